package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"matchdeportivo/internal/delivery/api/response"
	deliverycontext "matchdeportivo/internal/delivery/context"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/proximity"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler serves activities, their rosters and invite QR codes.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler.
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

var (
	errInvalidDate        = domainerrors.ErrInvalidActivity.WithDetails("la fecha debe tener formato AAAA-MM-DD")
	errMissingCoordinates = domainerrors.ErrInvalidActivity.WithDetails("la latitud y la longitud son obligatorias")
)

// CreateActivityRequest is the body of POST /api/v1/activities.
type CreateActivityRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Sport       string   `json:"sport" validate:"required,sport"`
	Description string   `json:"description" validate:"max=2000"`
	Place       string   `json:"place" validate:"required,max=200"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string   `json:"start_time" validate:"required,hhmm"`
	EndTime     string   `json:"end_time" validate:"omitempty,hhmm"`
	Level       string   `json:"level" validate:"required,level"`
	Capacity    int      `json:"capacity" validate:"gte=1,lte=500"`
}

// UpdateActivityRequest is a partial update. Omitted fields are unchanged.
type UpdateActivityRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Sport       *string  `json:"sport" validate:"omitempty,min=1,sport"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Place       *string  `json:"place" validate:"omitempty,min=1,max=200"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"start_time" validate:"omitempty,hhmm"`
	EndTime     *string  `json:"end_time" validate:"omitempty,hhmm|len=0"` // Empty makes the activity open-ended.
	Level       *string  `json:"level" validate:"omitempty,min=1,level"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gte=1,lte=500"`
}

// JoinByInviteRequest is the body of POST /api/v1/activities/join/qr.
type JoinByInviteRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ActivityResponse is the public view of an activity.
type ActivityResponse struct {
	ID               uuid.UUID    `json:"id"`
	OrganizerID      uuid.UUID    `json:"organizer_id"`
	Title            string       `json:"title"`
	Sport            string       `json:"sport"`
	Description      string       `json:"description"`
	Place            string       `json:"place"`
	Location         geo.GeoPoint `json:"location"`
	Date             string       `json:"date"`
	StartTime        string       `json:"start_time"`
	EndTime          string       `json:"end_time,omitempty"`
	Level            entity.Level `json:"level"`
	Capacity         int          `json:"capacity"`
	Slots            int          `json:"slots"`
	ParticipantIDs   []uuid.UUID  `json:"participant_ids"`
	ParticipantCount int          `json:"participant_count"`
	DistanceKm       *float64     `json:"distance_km,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ListingResponse is the pull-mode activity listing.
type ListingResponse struct {
	Activities []*ActivityResponse `json:"activities"`
	Advisory   proximity.Advisory  `json:"advisory"`
}

// CreateActivityResponse is the created activity and a summary of the nearby notifications.
type CreateActivityResponse struct {
	Activity       *ActivityResponse `json:"activity"`
	NotifiedUsers  int               `json:"notified_users"`
	FailedNotifies int               `json:"failed_notifications"`
}

// MyActivitiesResponse groups organized and joined activities.
type MyActivitiesResponse struct {
	Organized []*ActivityResponse `json:"organized"`
	Joined    []*ActivityResponse `json:"joined"`
}

func toActivityResponse(activity *entity.Activity, distanceKm *float64) *ActivityResponse {
	participantIDs := activity.ParticipantIDs
	if participantIDs == nil {
		participantIDs = []uuid.UUID{}
	}

	return &ActivityResponse{
		ID:               activity.ID,
		OrganizerID:      activity.OrganizerID,
		Title:            activity.Title,
		Sport:            activity.Sport,
		Description:      activity.Description,
		Place:            activity.Place,
		Location:         activity.Location,
		Date:             activity.Date.Format(dateLayout),
		StartTime:        activity.StartTime,
		EndTime:          activity.EndTime,
		Level:            activity.Level,
		Capacity:         activity.Capacity,
		Slots:            activity.Slots,
		ParticipantIDs:   participantIDs,
		ParticipantCount: len(participantIDs),
		DistanceKm:       distanceKm,
		CreatedAt:        activity.CreatedAt,
	}
}

func toActivityResponses(activities []*entity.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, toActivityResponse(activity, nil))
	}

	return out
}

func (r *CreateActivityRequest) toInput() (*usecase.CreateActivityInput, error) {
	if r.Latitude == nil || r.Longitude == nil {
		return nil, errMissingCoordinates
	}

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	return &usecase.CreateActivityInput{
		Title:       r.Title,
		Sport:       r.Sport,
		Description: r.Description,
		Place:       r.Place,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		Date:        date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Level:       entity.Level(r.Level),
		Capacity:    r.Capacity,
	}, nil
}

func (r *UpdateActivityRequest) toInput() (*usecase.UpdateActivityInput, error) {
	input := &usecase.UpdateActivityInput{
		Title:       r.Title,
		Sport:       r.Sport,
		Description: r.Description,
		Place:       r.Place,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Capacity:    r.Capacity,
	}

	if r.Date != nil {
		date, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		input.Date = &date
	}
	if r.Level != nil {
		level := entity.Level(*r.Level)
		input.Level = &level
	}

	return input, nil
}

// ListActivities returns the caller's own activities, then the nearby ones.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	filter := entity.ActivityFilter{Sport: c.QueryParam("sport")}
	listing, err := h.activityUC.ListActivities(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := &ListingResponse{
		Activities: make([]*ActivityResponse, 0, len(listing.Activities)),
		Advisory:   listing.Advisory,
	}
	for _, ranked := range listing.Activities {
		out.Activities = append(out.Activities, toActivityResponse(ranked.Activity, ranked.DistanceKm))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetActivity returns one activity.
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	activity, err := h.activityUC.GetActivity(c.Request().Context(), activityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity, nil))
}

// CreateActivity publishes a new activity and notifies nearby players.
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.activityUC.CreateActivity(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := &CreateActivityResponse{Activity: toActivityResponse(output.Activity, nil)}
	if output.FanOut != nil {
		out.NotifiedUsers = len(output.FanOut.Delivered())
		out.FailedNotifies = len(output.FanOut.Failed())
		if output.FanOut.Err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Nearby notification skipped",
				slog.String("activity_id", output.Activity.ID.String()),
				slog.Any("error", output.FanOut.Err),
			)
		}
	}

	return response.Success(c, http.StatusCreated, out)
}

// UpdateActivity applies a partial update. Organizer only.
func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	activity, err := h.activityUC.UpdateActivity(c.Request().Context(), userID, activityID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity, nil))
}

// DeleteActivity removes an activity. Organizer only.
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.activityUC.DeleteActivity(c.Request().Context(), userID, activityID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMyActivities returns the activities the caller organizes and joined.
func (h *ActivityHandler) ListMyActivities(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	mine, err := h.activityUC.ListMyActivities(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MyActivitiesResponse{
		Organized: toActivityResponses(mine.Organized),
		Joined:    toActivityResponses(mine.Joined),
	})
}

// JoinActivity takes one slot for the caller.
func (h *ActivityHandler) JoinActivity(c echo.Context) error {
	return h.changeRoster(c, h.activityUC.JoinActivity)
}

// LeaveActivity gives the caller's slot back.
func (h *ActivityHandler) LeaveActivity(c echo.Context) error {
	return h.changeRoster(c, h.activityUC.LeaveActivity)
}

func (h *ActivityHandler) changeRoster(c echo.Context, change func(ctx context.Context, userID, activityID uuid.UUID) (*entity.Activity, error)) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	activity, err := change(c.Request().Context(), userID, activityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity, nil))
}

// RemoveParticipant lets the organizer drop a player from the roster.
func (h *ActivityHandler) RemoveParticipant(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	participantID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	activity, err := h.activityUC.RemoveParticipant(c.Request().Context(), userID, activityID, participantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity, nil))
}

// GetInviteQR renders the invite QR code as PNG.
func (h *ActivityHandler) GetInviteQR(c echo.Context) error {
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.activityUC.GenerateInviteQR(c.Request().Context(), activityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// JoinByInvite joins the activity encoded in a scanned invite QR code.
func (h *ActivityHandler) JoinByInvite(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req JoinByInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	activity, err := h.activityUC.JoinByInvite(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity, nil))
}

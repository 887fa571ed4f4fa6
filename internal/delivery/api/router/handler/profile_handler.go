package handler

import (
	"net/http"

	"matchdeportivo/internal/delivery/api/response"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves sports profiles: the caller's own and other players' public cards.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest is a partial update. Omitted fields are unchanged;
// an empty preferred_sport or level clears it.
type UpdateProfileRequest struct {
	Nickname       *string  `json:"nickname" validate:"omitempty,max=50"`
	Icon           *string  `json:"icon" validate:"omitempty,max=100"`
	PreferredSport *string  `json:"preferred_sport" validate:"omitempty,sport"`
	Level          *string  `json:"level" validate:"omitempty,level"`
	Schedule       *string  `json:"schedule" validate:"omitempty,max=200"`
	LocationLabel  *string  `json:"location_label" validate:"omitempty,max=200"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ClearLocation  bool     `json:"clear_location"`
	RadiusKm       *int     `json:"radius_km" validate:"omitempty,gte=1,lte=50"`
	ClearRadius    bool     `json:"clear_radius"`
}

// PublicProfileResponse is another player's profile card.
type PublicProfileResponse struct {
	UserID         uuid.UUID    `json:"user_id"`
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	HasProfile     bool         `json:"has_profile"`
	Nickname       string       `json:"nickname,omitempty"`
	Icon           string       `json:"icon,omitempty"`
	PreferredSport string       `json:"preferred_sport,omitempty"`
	Level          entity.Level `json:"level,omitempty"`
	Schedule       string       `json:"schedule,omitempty"`
}

func (r *UpdateProfileRequest) toInput() *usecase.UpdateProfileInput {
	input := &usecase.UpdateProfileInput{
		Nickname:       r.Nickname,
		Icon:           r.Icon,
		PreferredSport: r.PreferredSport,
		Schedule:       r.Schedule,
		LocationLabel:  r.LocationLabel,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		ClearLocation:  r.ClearLocation,
		RadiusKm:       r.RadiusKm,
		ClearRadius:    r.ClearRadius,
	}
	if r.Level != nil {
		level := entity.Level(*r.Level)
		input.Level = &level
	}

	return input
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetPublicProfile returns the profile card of the player in the :id path parameter.
func (h *ProfileHandler) GetPublicProfile(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	card, err := h.profileUC.GetPublicProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PublicProfileResponse{
		UserID:         card.UserID,
		Username:       card.Username,
		Name:           card.Name,
		HasProfile:     card.HasProfile,
		Nickname:       card.Nickname,
		Icon:           card.Icon,
		PreferredSport: card.PreferredSport,
		Level:          card.Level,
		Schedule:       card.Schedule,
	})
}

// UpdateProfile applies a partial profile update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

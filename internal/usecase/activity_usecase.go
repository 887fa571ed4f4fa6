package usecase

import (
	"context"
	"time"

	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/proximity"

	"github.com/google/uuid"
)

// CreateActivityInput holds the fields of a new activity.
type CreateActivityInput struct {
	Title       string
	Sport       string
	Description string
	Place       string
	Latitude    float64
	Longitude   float64
	Date        time.Time
	StartTime   string
	EndTime     string
	Level       entity.Level
	Capacity    int
}

// UpdateActivityInput carries a partial activity update. Nil fields are left unchanged.
type UpdateActivityInput struct {
	Title       *string
	Sport       *string
	Description *string
	Place       *string
	Latitude    *float64 // Must be given together with Longitude.
	Longitude   *float64
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Level       *entity.Level
	Capacity    *int
}

// CreateActivityOutput is the created activity and what the nearby fan-out did.
type CreateActivityOutput struct {
	Activity *entity.Activity
	FanOut   *FanOutReport
}

// MyActivities groups the activities a user organizes and the ones they joined.
type MyActivities struct {
	Organized []*entity.Activity
	Joined    []*entity.Activity
}

// ActivityUsecase defines the interface for activity operations.
type ActivityUsecase interface {
	// ListActivities returns the viewer's own activities followed by nearby ones.
	ListActivities(ctx context.Context, viewerID uuid.UUID, filter entity.ActivityFilter) (*proximity.Listing, error)

	GetActivity(ctx context.Context, activityID uuid.UUID) (*entity.Activity, error)

	// CreateActivity persists the activity, then notifies nearby players. The
	// notification step never makes creation fail.
	CreateActivity(ctx context.Context, organizerID uuid.UUID, input *CreateActivityInput) (*CreateActivityOutput, error)

	UpdateActivity(ctx context.Context, organizerID, activityID uuid.UUID, input *UpdateActivityInput) (*entity.Activity, error)
	DeleteActivity(ctx context.Context, organizerID, activityID uuid.UUID) error
	ListMyActivities(ctx context.Context, userID uuid.UUID) (*MyActivities, error)

	// JoinActivity, LeaveActivity and RemoveParticipant change the roster and
	// the remaining slots in a single transaction.
	JoinActivity(ctx context.Context, userID, activityID uuid.UUID) (*entity.Activity, error)
	LeaveActivity(ctx context.Context, userID, activityID uuid.UUID) (*entity.Activity, error)
	RemoveParticipant(ctx context.Context, organizerID, activityID, participantID uuid.UUID) (*entity.Activity, error)

	GenerateInviteQR(ctx context.Context, activityID uuid.UUID) ([]byte, error)
	JoinByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Activity, error)
}

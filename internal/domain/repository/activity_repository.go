package repository

import (
	"context"
	"errors"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrNoSlotsLeft is returned when a slot cannot be taken because none remain.
	ErrNoSlotsLeft = errors.New("no slots left")
	// ErrSlotsAtCapacity is returned when a slot cannot be released because all are free.
	ErrSlotsAtCapacity = errors.New("slots already at capacity")
	// ErrDuplicateParticipant is returned when the user already joined.
	ErrDuplicateParticipant = errors.New("participant already exists")
	// ErrParticipantNotFound is returned when the user is not a participant.
	ErrParticipantNotFound = errors.New("participant not found")
)

// ActivityRepository defines persistence for activities and their rosters.
type ActivityRepository interface {
	// Create persists a new activity. ID and timestamps are filled in.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity with its participant IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindByIDForUpdate is FindByID holding a row lock until the surrounding
	// transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindAll lists activities newest first.
	FindAll(ctx context.Context, filter entity.ActivityFilter) ([]*entity.Activity, error)

	// FindByOrganizer lists activities organized by userID ordered by date and start time.
	FindByOrganizer(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// FindJoinedBy lists activities userID joined but does not organize, ordered by date and start time.
	FindJoinedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// Update overwrites the editable fields, including capacity and slots.
	Update(ctx context.Context, activity *entity.Activity) error

	// Delete removes an activity and its roster.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddParticipant inserts a roster row. Returns ErrDuplicateParticipant if present.
	AddParticipant(ctx context.Context, activityID, userID uuid.UUID) error

	// RemoveParticipant deletes a roster row. Returns ErrParticipantNotFound if absent.
	RemoveParticipant(ctx context.Context, activityID, userID uuid.UUID) error

	// TakeSlot decrements slots only while slots > 0. Returns ErrNoSlotsLeft otherwise.
	TakeSlot(ctx context.Context, activityID uuid.UUID) error

	// ReleaseSlot increments slots only while slots < capacity. Returns ErrSlotsAtCapacity otherwise.
	ReleaseSlot(ctx context.Context, activityID uuid.UUID) error
}

package appointment

import (
	"context"
	"time"

	"github.com/iswantosan/appointment/internal/models"
)

// ListFilter narrows ListByOwner. Nil fields impose no constraint; filters
// compose conjunctively and results are always ordered by date ascending.
type ListFilter struct {
	From *time.Time
	To   *time.Time
	Skip *int
	Take *int
}

type Repository interface {
	// -------- Lookup --------
	FindByOwnerAndID(
		ctx context.Context,
		ownerID uint,
		id uint,
	) (*models.Appointment, error)

	ListByOwner(
		ctx context.Context,
		ownerID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	// FindByOwnerAndDate returns the owner's appointments at exactly date,
	// skipping excludeID when non-zero (self-exclusion on update).
	FindByOwnerAndDate(
		ctx context.Context,
		ownerID uint,
		date time.Time,
		excludeID uint,
	) ([]models.Appointment, error)

	// -------- Mutation --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Replace overwrites the stored record with ap as a whole value, keyed
	// by ap.ID. Callers construct the replacement explicitly rather than
	// mutating a fetched record in place.
	Replace(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}

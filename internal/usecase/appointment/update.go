package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iswantosan/appointment/internal/audit"
	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/httperr"
	"github.com/iswantosan/appointment/internal/models"
)

type UpdateAppointmentInput struct {
	Title string
	Date  time.Time
	Notes string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the payload, checks for a date clash excluding the
// record itself, and only then resolves the target by owner. The order is
// deliberate: it matches the service's long-standing observable behavior.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	id uint,
	in UpdateAppointmentInput,
) error {

	if err := domain.ValidatePayload(in.Title, in.Date, time.Now()); err != nil {
		return err
	}

	matches, err := uc.repo.FindByOwnerAndDate(ctx, ownerID, in.Date, id)
	if err != nil {
		return err
	}
	if len(matches) > 0 {
		return httperr.ErrBusinessField(domain.CodeDateConflict, "date")
	}

	existing, err := uc.repo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(domain.CodeNotFound)
		}
		return err
	}

	// Build the replacement value explicitly; id, owner and creation time
	// never change.
	next := &models.Appointment{
		ID:        existing.ID,
		UserID:    existing.UserID,
		Title:     in.Title,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: existing.CreatedAt,
	}

	if err := uc.repo.Replace(ctx, next); err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusinessField(domain.CodeDateConflict, "date")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &next.ID,
	})

	return nil
}

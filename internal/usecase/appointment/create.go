package appointment

import (
	"context"
	"time"

	"github.com/iswantosan/appointment/internal/audit"
	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/httperr"
	"github.com/iswantosan/appointment/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Title string
	Date  time.Time
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := domain.ValidatePayload(in.Title, in.Date, time.Now()); err != nil {
		return nil, err
	}

	// Pre-check gives the friendly field error; the unique index on
	// (user_id, date) below is the race-proof backstop.
	matches, err := uc.repo.FindByOwnerAndDate(ctx, ownerID, in.Date, 0)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		uc.dispatchConflict(ownerID, in.Date)
		return nil, httperr.ErrBusinessField(domain.CodeDateConflict, "date")
	}

	ap := &models.Appointment{
		UserID: ownerID,
		Title:  in.Title,
		Date:   in.Date,
		Notes:  in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			uc.dispatchConflict(ownerID, in.Date)
			return nil, httperr.ErrBusinessField(domain.CodeDateConflict, "date")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(ownerID uint, date time.Time) {
	uc.audit.Dispatch(audit.Event{
		UserID: ownerID,
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"date": date,
		},
	})
}

package appointment

import (
	"context"

	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	ownerID uint,
	filter domain.ListFilter,
) ([]models.Appointment, error) {
	return uc.repo.ListByOwner(ctx, ownerID, filter)
}

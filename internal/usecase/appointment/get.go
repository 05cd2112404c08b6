package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/httperr"
	"github.com/iswantosan/appointment/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute fetches a single record scoped to its owner. A record owned by
// someone else is indistinguishable from a missing one.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	return ap, nil
}

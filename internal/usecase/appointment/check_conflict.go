package appointment

import (
	"context"
	"time"

	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/models"
)

type ConflictResult struct {
	Conflict bool
	Matches  []models.Appointment
}

type CheckConflict struct {
	repo domain.Repository
}

func NewCheckConflict(repo domain.Repository) *CheckConflict {
	return &CheckConflict{repo: repo}
}

// Execute reports every appointment the caller holds at exactly date. The
// boolean is a convenience flag equal to "matches non-empty".
func (uc *CheckConflict) Execute(
	ctx context.Context,
	ownerID uint,
	date time.Time,
) (*ConflictResult, error) {

	matches, err := uc.repo.FindByOwnerAndDate(ctx, ownerID, date, 0)
	if err != nil {
		return nil, err
	}

	return &ConflictResult{
		Conflict: len(matches) > 0,
		Matches:  matches,
	}, nil
}

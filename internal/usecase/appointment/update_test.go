package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/httperr"
	"github.com/iswantosan/appointment/internal/models"
)

func TestUpdateAppointment_Success(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	date := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	created := time.Now().Add(-24 * time.Hour)

	existing := &models.Appointment{
		ID:        5,
		UserID:    7,
		Title:     "old title",
		Date:      time.Now().Add(24 * time.Hour),
		Notes:     "old notes",
		CreatedAt: created,
	}

	repo.On("FindByOwnerAndDate", mock.Anything, uint(7), date, uint(5)).
		Return([]models.Appointment{}, nil)
	repo.On("FindByOwnerAndID", mock.Anything, uint(7), uint(5)).
		Return(existing, nil)
	repo.On("Replace", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.ID == 5 &&
			ap.UserID == 7 &&
			ap.Title == "new title" &&
			ap.Date.Equal(date) &&
			ap.Notes == "new notes" &&
			ap.CreatedAt.Equal(created)
	})).Return(nil)

	err := uc.Execute(context.Background(), 7, 5, UpdateAppointmentInput{
		Title: "new title",
		Date:  date,
		Notes: "new notes",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)

	// The fetched record itself is never mutated.
	assert.Equal(t, "old title", existing.Title)
	assert.Equal(t, "old notes", existing.Notes)
}

// Re-saving a record with its own current date must not self-conflict: the
// conflict lookup excludes the record's id.
func TestUpdateAppointment_OwnDateIsNotAConflict(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	date := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	existing := &models.Appointment{ID: 5, UserID: 7, Title: "dentist", Date: date}

	repo.On("FindByOwnerAndDate", mock.Anything, uint(7), date, uint(5)).
		Return([]models.Appointment{}, nil)
	repo.On("FindByOwnerAndID", mock.Anything, uint(7), uint(5)).
		Return(existing, nil)
	repo.On("Replace", mock.Anything, mock.AnythingOfType("*models.Appointment")).
		Return(nil)

	err := uc.Execute(context.Background(), 7, 5, UpdateAppointmentInput{
		Title: "dentist",
		Date:  date,
		Notes: "",
	})

	require.NoError(t, err)
}

func TestUpdateAppointment_Conflict(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	date := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	repo.On("FindByOwnerAndDate", mock.Anything, uint(7), date, uint(5)).
		Return([]models.Appointment{{ID: 9, UserID: 7, Date: date}}, nil)

	err := uc.Execute(context.Background(), 7, 5, UpdateAppointmentInput{
		Title: "dentist",
		Date:  date,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeDateConflict))
	repo.AssertNotCalled(t, "FindByOwnerAndID")
	repo.AssertNotCalled(t, "Replace")
}

func TestUpdateAppointment_NotOwned(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	date := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	repo.On("FindByOwnerAndDate", mock.Anything, uint(7), date, uint(5)).
		Return([]models.Appointment{}, nil)
	repo.On("FindByOwnerAndID", mock.Anything, uint(7), uint(5)).
		Return(nil, gorm.ErrRecordNotFound)

	err := uc.Execute(context.Background(), 7, 5, UpdateAppointmentInput{
		Title: "dentist",
		Date:  date,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFound))
	repo.AssertNotCalled(t, "Replace")
}

func TestUpdateAppointment_ValidationBeforeLookup(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	err := uc.Execute(context.Background(), 7, 5, UpdateAppointmentInput{
		Title: "",
		Date:  time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeTitleRequired))
	repo.AssertNotCalled(t, "FindByOwnerAndDate")
	repo.AssertNotCalled(t, "FindByOwnerAndID")
}

package dto

import (
	"time"

	"github.com/iswantosan/appointment/internal/models"
)

// AppointmentDTO is the transfer shape for appointment records. Owner and
// the store-managed timestamps stay internal.
type AppointmentDTO struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

type ConflictDTO struct {
	Conflict bool             `json:"conflict"`
	Matches  []AppointmentDTO `json:"matches"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:    ap.ID,
		Title: ap.Title,
		Date:  ap.Date,
		Notes: ap.Notes,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}

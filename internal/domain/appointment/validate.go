package appointment

import (
	"time"

	"github.com/iswantosan/appointment/internal/httperr"
)

// Error codes raised by appointment operations.
const (
	CodeTitleRequired = "title_required"
	CodeInvalidDate   = "invalid_date"
	CodeDateConflict  = "date_conflict"
	CodeNotFound      = "appointment_not_found"
)

// ValidatePayload applies the field rules shared by create and update:
// a title must be present and the date must not lie in the past relative
// to now. Notes are structurally required on the wire but carry no content
// constraint.
func ValidatePayload(title string, date time.Time, now time.Time) error {
	if title == "" {
		return httperr.ErrBusinessField(CodeTitleRequired, "title")
	}
	if date.Before(now) {
		return httperr.ErrBusinessField(CodeInvalidDate, "date")
	}
	return nil
}

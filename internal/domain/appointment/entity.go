package appointment

import (
	"time"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to a new status after checking the
// target is a known status and the move is allowed from the current one.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	ap.UpdatedAt = now
	return nil
}

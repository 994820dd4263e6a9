package appointment

import "github.com/careslot/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// CanTransition enforces the appointment lifecycle:
// pending → confirmed | cancelled, confirmed → cancelled | completed.
// cancelled and completed are terminal.
func CanTransition(from, to Status) error {
	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCancelled || to == StatusCompleted {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// InitialStatus is the state every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

package appointment

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentIfSlotFree must reject the insert with a
	// slot_unavailable business error when another non-cancelled
	// appointment already holds (doctorID, date, time), atomically
	// with respect to concurrent bookings for the same slot.
	CreateAppointmentIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------

	// GetAppointmentForIdentity scopes the lookup by the caller's
	// role: patients see their own rows, doctors the rows of their
	// doctor record, admins any row. A row outside the caller's
	// scope is reported the same way as a missing one.
	GetAppointmentForIdentity(
		ctx context.Context,
		appointmentID uint,
		ident identity.Identity,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Visibility --------
	ListForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListForDoctorUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)
}

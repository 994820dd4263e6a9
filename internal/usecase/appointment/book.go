package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careslot/clinic-scheduler/internal/audit"
	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID uint
	Date     string
	Time     string
	Reason   string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot for the caller. Any authenticated identity may
// book; the patient role is deliberately not enforced here (see
// DESIGN.md).
func (uc *BookAppointment) Execute(
	ctx context.Context,
	ident identity.Identity,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Doctor must exist
	// --------------------------------------------------
	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	// --------------------------------------------------
	// Calendar validity
	// --------------------------------------------------
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Check-and-insert (atomic in the repository)
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:       ident.UserID,
		DoctorID:        in.DoctorID,
		ReferenceCode:   uuid.NewString(),
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Reason:          in.Reason,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

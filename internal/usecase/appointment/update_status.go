package appointment

import (
	"context"
	"time"

	"github.com/careslot/clinic-scheduler/internal/audit"
	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	ident identity.Identity,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForIdentity(ctx, appointmentID, ident)
	if err != nil {
		// "doesn't exist" and "isn't yours" give the same answer so
		// callers cannot probe for other people's appointments.
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Transition(ap, domain.Status(newStatus), time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "appointment_" + newStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

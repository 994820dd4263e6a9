package appointment

import (
	"context"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/dto"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute returns the appointments the caller is allowed to see:
// patients their own, doctors those bound to their doctor record,
// admins everything. Rows come back most recent first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	ident identity.Identity,
) ([]dto.AppointmentListDTO, error) {

	var (
		aps []models.Appointment
		err error
	)

	switch ident.UserType {
	case identity.TypePatient:
		aps, err = uc.repo.ListForPatient(ctx, ident.UserID)
	case identity.TypeDoctor:
		aps, err = uc.repo.ListForDoctorUser(ctx, ident.UserID)
	case identity.TypeAdmin:
		aps, err = uc.repo.ListAll(ctx)
	default:
		return nil, httperr.ErrBusiness("unknown_user_type")
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			ReferenceCode:   ap.ReferenceCode,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Reason:          ap.Reason,
			Status:          ap.Status,
			PatientName:     ap.Patient.FirstName + " " + ap.Patient.LastName,
			PatientPhone:    ap.Patient.Phone,
			DoctorName:      ap.Doctor.User.FirstName + " " + ap.Doctor.User.LastName,
			Specialization:  ap.Doctor.Specialization,
		})
	}

	return out, nil
}

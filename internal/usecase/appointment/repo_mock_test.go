package appointment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

// -- Mock Repository --

type mockRepo struct {
	users        map[uint]*models.User
	doctors      map[uint]*models.Doctor
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		users:        make(map[uint]*models.User),
		doctors:      make(map[uint]*models.Doctor),
		appointments: make(map[uint]*models.Appointment),
	}
}

func (m *mockRepo) addUser(id uint, first, last, phone string) {
	m.users[id] = &models.User{ID: id, FirstName: first, LastName: last, Phone: phone}
}

func (m *mockRepo) addDoctor(id, userID uint, specialization string) {
	m.doctors[id] = &models.Doctor{ID: id, UserID: userID, Specialization: specialization}
}

func (m *mockRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	doc, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return doc, nil
}

func (m *mockRepo) CreateAppointmentIfSlotFree(_ context.Context, ap *models.Appointment) error {
	for _, other := range m.appointments {
		if other.DoctorID == ap.DoctorID &&
			other.AppointmentDate.Equal(ap.AppointmentDate) &&
			other.AppointmentTime == ap.AppointmentTime &&
			other.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	m.nextID++
	ap.ID = m.nextID
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepo) GetAppointmentForIdentity(
	_ context.Context,
	appointmentID uint,
	ident identity.Identity,
) (*models.Appointment, error) {

	ap, ok := m.appointments[appointmentID]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}

	switch ident.UserType {
	case identity.TypeDoctor:
		doc, ok := m.doctors[ap.DoctorID]
		if !ok || doc.UserID != ident.UserID {
			return nil, fmt.Errorf("record not found")
		}
	case identity.TypeAdmin:
		// unscoped
	default:
		if ap.PatientID != ident.UserID {
			return nil, fmt.Errorf("record not found")
		}
	}

	out := *ap
	return &out, nil
}

func (m *mockRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := m.appointments[ap.ID]; !ok {
		return fmt.Errorf("record not found")
	}
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepo) ListForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.PatientID == patientID {
			out = append(out, m.denormalize(ap))
		}
	}
	sortMostRecentFirst(out)
	return out, nil
}

func (m *mockRepo) ListForDoctorUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		doc, ok := m.doctors[ap.DoctorID]
		if ok && doc.UserID == userID {
			out = append(out, m.denormalize(ap))
		}
	}
	sortMostRecentFirst(out)
	return out, nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		out = append(out, m.denormalize(ap))
	}
	sortMostRecentFirst(out)
	return out, nil
}

// denormalize mimics the preloads of the GORM repository.
func (m *mockRepo) denormalize(ap *models.Appointment) models.Appointment {
	out := *ap
	if u, ok := m.users[ap.PatientID]; ok {
		out.Patient = *u
	}
	if d, ok := m.doctors[ap.DoctorID]; ok {
		out.Doctor = *d
		if du, ok := m.users[d.UserID]; ok {
			out.Doctor.User = *du
		}
	}
	return out
}

func sortMostRecentFirst(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		if !aps[i].AppointmentDate.Equal(aps[j].AppointmentDate) {
			return aps[i].AppointmentDate.After(aps[j].AppointmentDate)
		}
		return aps[i].AppointmentTime > aps[j].AppointmentTime
	})
}

var _ domain.Repository = (*mockRepo)(nil)

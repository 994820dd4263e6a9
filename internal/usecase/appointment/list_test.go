package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/models"
)

func seedClinic(repo *mockRepo) {
	repo.addUser(2, "Alice", "Adams", "111")
	repo.addUser(3, "Bob", "Brown", "222")
	repo.addUser(10, "Diana", "Reed", "333")
	repo.addUser(11, "Evan", "Stone", "444")
	repo.addDoctor(1, 10, "cardiology")
	repo.addDoctor(2, 11, "dermatology")
}

func seedAt(repo *mockRepo, patientID, doctorID uint, date, timeStr string) *models.Appointment {
	d, _ := time.Parse("2006-01-02", date)
	repo.nextID++
	ap := &models.Appointment{
		ID:              repo.nextID,
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: d,
		AppointmentTime: timeStr,
		Status:          string(domain.StatusPending),
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestListAppointments_PatientSeesOnlyOwn(t *testing.T) {
	repo := newMockRepo()
	seedClinic(repo)
	seedAt(repo, 2, 1, "2024-01-15", "10:00")
	seedAt(repo, 3, 1, "2024-01-15", "11:00")
	seedAt(repo, 2, 2, "2024-01-16", "09:00")

	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), identity.Identity{UserID: 2, UserType: identity.TypePatient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, row := range out {
		if row.PatientName != "Alice Adams" {
			t.Errorf("patient name = %q, expected only Alice's rows", row.PatientName)
		}
	}
}

func TestListAppointments_DoctorSeesOnlyTheirs(t *testing.T) {
	repo := newMockRepo()
	seedClinic(repo)
	seedAt(repo, 2, 1, "2024-01-15", "10:00")
	seedAt(repo, 3, 2, "2024-01-15", "11:00")

	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), identity.Identity{UserID: 10, UserType: identity.TypeDoctor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Specialization != "cardiology" {
		t.Errorf("specialization = %q, want cardiology", out[0].Specialization)
	}
	if out[0].PatientPhone != "111" {
		t.Errorf("patient phone = %q, want the counterpart's phone", out[0].PatientPhone)
	}
}

func TestListAppointments_AdminSeesAll(t *testing.T) {
	repo := newMockRepo()
	seedClinic(repo)
	seedAt(repo, 2, 1, "2024-01-15", "10:00")
	seedAt(repo, 3, 2, "2024-01-15", "11:00")
	seedAt(repo, 3, 1, "2024-01-17", "08:00")

	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), identity.Identity{UserID: 99, UserType: identity.TypeAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
}

func TestListAppointments_MostRecentFirst(t *testing.T) {
	repo := newMockRepo()
	seedClinic(repo)
	seedAt(repo, 2, 1, "2024-01-15", "10:00")
	seedAt(repo, 2, 1, "2024-01-17", "08:00")
	seedAt(repo, 2, 1, "2024-01-15", "14:00")

	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), identity.Identity{UserID: 2, UserType: identity.TypePatient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-17 08:00", "2024-01-15 14:00", "2024-01-15 10:00"}
	for i, row := range out {
		got := row.AppointmentDate + " " + row.AppointmentTime
		if got != want[i] {
			t.Errorf("row %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestListAppointments_DenormalizedCounterparts(t *testing.T) {
	repo := newMockRepo()
	seedClinic(repo)
	seedAt(repo, 2, 1, "2024-01-15", "10:00")

	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), identity.Identity{UserID: 2, UserType: identity.TypePatient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := out[0]
	if row.DoctorName != "Diana Reed" {
		t.Errorf("doctor name = %q, want Diana Reed", row.DoctorName)
	}
	if row.Specialization != "cardiology" {
		t.Errorf("specialization = %q, want cardiology", row.Specialization)
	}
}

package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

// -- Mock Repository --

type mockAdminRepo struct {
	users        int64
	doctors      int64
	appointments int64
	pending      int64

	userRows []models.User

	failPending error
}

func (m *mockAdminRepo) CountUsers(_ context.Context) (int64, error)    { return m.users, nil }
func (m *mockAdminRepo) CountDoctors(_ context.Context) (int64, error)  { return m.doctors, nil }
func (m *mockAdminRepo) CountAppointments(_ context.Context) (int64, error) {
	return m.appointments, nil
}

func (m *mockAdminRepo) CountPendingAppointments(_ context.Context) (int64, error) {
	if m.failPending != nil {
		return 0, m.failPending
	}
	return m.pending, nil
}

func (m *mockAdminRepo) ListUsers(_ context.Context, search string) ([]models.User, error) {
	return m.userRows, nil
}

var _ Repository = (*mockAdminRepo)(nil)

func adminIdentity() identity.Identity {
	return identity.Identity{UserID: 1, Email: "admin@example.com", UserType: identity.TypeAdmin}
}

// -- Tests --

func TestComputeStats_Counts(t *testing.T) {
	repo := &mockAdminRepo{users: 10, doctors: 2, appointments: 5, pending: 3}
	uc := NewComputeStats(repo)

	stats, err := uc.Execute(context.Background(), adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalUsers != 10 || stats.TotalDoctors != 2 ||
		stats.TotalAppointments != 5 || stats.PendingAppointments != 3 {
		t.Errorf("stats = %+v, want {10 2 5 3}", *stats)
	}
}

func TestComputeStats_ForbiddenForNonAdmin(t *testing.T) {
	repo := &mockAdminRepo{users: 10}
	uc := NewComputeStats(repo)

	for _, ut := range []identity.UserType{identity.TypePatient, identity.TypeDoctor} {
		ident := identity.Identity{UserID: 2, UserType: ut}
		_, err := uc.Execute(context.Background(), ident)
		if !httperr.IsBusiness(err, "admin_access_required") {
			t.Errorf("%s: err = %v, want admin_access_required", ut, err)
		}
	}
}

func TestComputeStats_IdempotentRead(t *testing.T) {
	repo := &mockAdminRepo{users: 10, doctors: 2, appointments: 5, pending: 3}
	uc := NewComputeStats(repo)

	first, err := uc.Execute(context.Background(), adminIdentity())
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), adminIdentity())
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	if *first != *second {
		t.Errorf("stats changed between reads with no writes: %+v vs %+v", *first, *second)
	}
}

func TestComputeStats_FailedCountFailsWholeRead(t *testing.T) {
	repo := &mockAdminRepo{users: 10, doctors: 2, appointments: 5, failPending: errors.New("connection reset")}
	uc := NewComputeStats(repo)

	stats, err := uc.Execute(context.Background(), adminIdentity())
	if err == nil {
		t.Fatal("expected an error when a count fails")
	}
	if stats != nil {
		t.Errorf("partial stats surfaced: %+v", *stats)
	}
}

func TestListUsers_AdminOnly(t *testing.T) {
	repo := &mockAdminRepo{userRows: []models.User{{ID: 1, FirstName: "Ann"}}}
	uc := NewListUsers(repo)

	ident := identity.Identity{UserID: 2, UserType: identity.TypePatient}
	_, err := uc.Execute(context.Background(), ident, "")
	if !httperr.IsBusiness(err, "admin_access_required") {
		t.Fatalf("err = %v, want admin_access_required", err)
	}
}

func TestListUsers_MapsSummaries(t *testing.T) {
	repo := &mockAdminRepo{userRows: []models.User{
		{ID: 1, FirstName: "Ann", LastName: "Archer", Email: "ann@example.com", UserType: "patient"},
		{ID: 2, FirstName: "Ben", LastName: "Birch", Email: "ben@example.com", UserType: "doctor"},
	}}
	uc := NewListUsers(repo)

	out, err := uc.Execute(context.Background(), adminIdentity(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Email != "ann@example.com" || out[1].UserType != "doctor" {
		t.Errorf("unexpected mapping: %+v", out)
	}
}

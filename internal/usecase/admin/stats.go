package admin

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountDoctors(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountPendingAppointments(ctx context.Context) (int64, error)

	ListUsers(ctx context.Context, search string) ([]models.User, error)
}

type Stats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalDoctors        int64 `json:"total_doctors"`
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
}

type ComputeStats struct {
	repo Repository
}

func NewComputeStats(repo Repository) *ComputeStats {
	return &ComputeStats{repo: repo}
}

// Execute gathers the four dashboard counts. All four must succeed;
// a failed count fails the whole read, no partial result goes out.
func (uc *ComputeStats) Execute(
	ctx context.Context,
	ident identity.Identity,
) (*Stats, error) {

	if !ident.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}

	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.repo.CountDoctors(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := uc.repo.CountPendingAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:          users,
		TotalDoctors:        doctors,
		TotalAppointments:   appointments,
		PendingAppointments: pending,
	}, nil
}

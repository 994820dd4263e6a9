package admin

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/dto"
	"github.com/careslot/clinic-scheduler/internal/httperr"
)

type ListUsers struct {
	repo Repository
}

func NewListUsers(repo Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	ident identity.Identity,
	search string,
) ([]dto.UserSummaryDTO, error) {

	if !ident.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}

	users, err := uc.repo.ListUsers(ctx, search)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserSummaryDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserSummaryDTO{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Phone:     u.Phone,
			UserType:  u.UserType,
			CreatedAt: u.CreatedAt,
		})
	}

	return out, nil
}

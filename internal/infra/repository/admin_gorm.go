package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/models"
	ucadmin "github.com/careslot/clinic-scheduler/internal/usecase/admin"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (r *AdminGormRepository) CountDoctors(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&n).Error
	return n, err
}

func (r *AdminGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&n).Error
	return n, err
}

func (r *AdminGormRepository) CountPendingAppointments(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ?", "pending").
		Count(&n).Error
	return n, err
}

func (r *AdminGormRepository) ListUsers(
	ctx context.Context,
	search string,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Compile-time check
var _ ucadmin.Repository = (*AdminGormRepository)(nil)

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentIfSlotFree runs the conflict check and the insert in
// a single transaction. The partial unique index on
// (doctor_id, appointment_date, appointment_time) WHERE status <> 'cancelled'
// backs this up against concurrent writers; a duplicate-key error from
// that index is reported as slot_unavailable too.
func (r *AppointmentGormRepository) CreateAppointmentIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
				ap.DoctorID,
				ap.AppointmentDate,
				ap.AppointmentTime,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForIdentity(
	ctx context.Context,
	appointmentID uint,
	ident identity.Identity,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	switch ident.UserType {
	case identity.TypeDoctor:
		q = q.
			Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
			Where("appointments.id = ? AND doctors.user_id = ?", appointmentID, ident.UserID)
	case identity.TypeAdmin:
		q = q.Where("appointments.id = ?", appointmentID)
	default:
		q = q.Where("appointments.id = ? AND appointments.patient_id = ?", appointmentID, ident.UserID)
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Visibility
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForDoctorUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("doctors.user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

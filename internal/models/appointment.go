package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `gorm:"index;not null" json:"patient_id"`
	Patient   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	DoctorID uint   `gorm:"index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	AppointmentDate time.Time `gorm:"type:date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`

	Reason string `gorm:"size:500" json:"reason"`

	// pending, confirmed, cancelled or completed. Transitions are
	// enforced in internal/domain/appointment.
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

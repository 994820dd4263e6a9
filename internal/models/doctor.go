package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialization  string  `gorm:"size:100" json:"specialization"`
	LicenseNumber   string  `gorm:"size:50;uniqueIndex" json:"license_number"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	Location        string  `gorm:"size:255" json:"location"`
	Bio             string  `gorm:"size:1000" json:"bio"`
	PhotoURL        string  `gorm:"size:255" json:"photo_url"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

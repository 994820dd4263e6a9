package models

// Availability mirrors the clinic schema's weekly availability table.
// No booking operation reads it yet; slots are validated against
// existing appointments only.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	DayOfWeek int    `json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`
}

package dto

type DoctorListDTO struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Specialization  string  `json:"specialization"`
	LicenseNumber   string  `json:"license_number"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	Location        string  `json:"location"`
	Bio             string  `json:"bio"`
	PhotoURL        string  `json:"photo_url"`

	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
}

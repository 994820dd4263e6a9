package dto

// AppointmentListDTO is the denormalized row returned by the
// appointment listing: both sides of the booking are flattened in so
// dashboards need no extra lookups.
type AppointmentListDTO struct {
	ID            uint   `json:"id"`
	ReferenceCode string `json:"reference_code"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`

	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`

	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
}

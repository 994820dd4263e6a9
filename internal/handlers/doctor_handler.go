package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/dto"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

const doctorListCacheTTL = 60 * time.Second

type DoctorHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorHandler(db *gorm.DB, cch *cache.Cache) *DoctorHandler {
	return &DoctorHandler{db: db, cache: cch}
}

// ======================================================
// LIST (public)
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	specialization := strings.TrimSpace(c.Query("specialization"))
	search := strings.TrimSpace(c.Query("search"))

	cacheKey := fmt.Sprintf("doctors:%s:%s", specialization, search)
	if body, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		c.Data(200, "application/json; charset=utf-8", []byte(body))
		return
	}

	q := h.db.Model(&models.Doctor{}).Preload("User")

	if specialization != "" && specialization != "all" {
		q = q.Where("doctors.specialization = ?", specialization)
	}

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.
			Joins("JOIN users ON users.id = doctors.user_id").
			Where(
				"LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(doctors.specialization) LIKE ?",
				like, like, like,
			)
	}

	var doctors []models.Doctor
	if err := q.Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	out := make([]dto.DoctorListDTO, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorToDTO(&d))
	}

	resp := gin.H{"doctors": out}
	if body, err := json.Marshal(resp); err == nil {
		h.cache.Set(c.Request.Context(), cacheKey, string(body), doctorListCacheTTL)
	}

	c.JSON(200, resp)
}

// ======================================================
// GET (public)
// ======================================================

func (h *DoctorHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.Preload("User").First(&doctor, "doctors.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	c.JSON(200, gin.H{"doctor": doctorToDTO(&doctor)})
}

func doctorToDTO(d *models.Doctor) dto.DoctorListDTO {
	return dto.DoctorListDTO{
		ID:              d.ID,
		UserID:          d.UserID,
		FirstName:       d.User.FirstName,
		LastName:        d.User.LastName,
		Email:           d.User.Email,
		Phone:           d.User.Phone,
		Specialization:  d.Specialization,
		LicenseNumber:   d.LicenseNumber,
		ExperienceYears: d.ExperienceYears,
		ConsultationFee: d.ConsultationFee,
		Location:        d.Location,
		Bio:             d.Bio,
		PhotoURL:        d.PhotoURL,
		Rating:          d.Rating,
		TotalReviews:    d.TotalReviews,
	}
}

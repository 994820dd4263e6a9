package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/imaging"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/storage"
)

const maxPhotoBytes = 10 << 20

type ProfileHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	uploader *storage.S3Uploader
}

func NewProfileHandler(db *gorm.DB, cch *cache.Cache, uploader *storage.S3Uploader) *ProfileHandler {
	return &ProfileHandler{db: db, cache: cch, uploader: uploader}
}

// ======================================================
// GET PROFILE
// ======================================================

func (h *ProfileHandler) Get(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	var user models.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	resp := gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"user_type":  user.UserType,
	}

	if ident.UserType == identity.TypeDoctor {
		var doctor models.Doctor
		if err := h.db.Where("user_id = ?", ident.UserID).First(&doctor).Error; err == nil {
			resp["doctor_info"] = doctor
		} else {
			resp["doctor_info"] = nil
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}

// ======================================================
// UPDATE PROFILE
// ======================================================

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`

	// Doctor-only fields.
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	Location        string  `json:"location"`
	Bio             string  `json:"bio"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", ident.UserID).
			Updates(map[string]any{
				"first_name": req.FirstName,
				"last_name":  req.LastName,
				"phone":      req.Phone,
			}).Error; err != nil {
			return err
		}

		if ident.UserType == identity.TypeDoctor {
			return tx.Model(&models.Doctor{}).
				Where("user_id = ?", ident.UserID).
				Updates(map[string]any{
					"specialization":   req.Specialization,
					"experience_years": req.ExperienceYears,
					"consultation_fee": req.ConsultationFee,
					"location":         req.Location,
					"bio":              req.Bio,
				}).Error
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	if ident.UserType == identity.TypeDoctor {
		h.cache.InvalidatePrefix(c.Request.Context(), "doctors:")
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile_updated"})
}

// ======================================================
// UPLOAD PHOTO (doctors)
// ======================================================

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	if ident.UserType != identity.TypeDoctor {
		httperr.Forbidden(c, "doctor_access_required", "Only doctors can upload a profile photo.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded photo.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded photo.")
		return
	}

	encoded, err := imaging.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "The photo must be a valid JPEG or PNG.")
		return
	}

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", ident.UserID).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor profile not found.")
		return
	}

	key := fmt.Sprintf("doctors/%d/photo.webp", doctor.ID)
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the photo.")
		return
	}

	doctor.PhotoURL = url
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save the photo URL.")
		return
	}

	h.cache.InvalidatePrefix(c.Request.Context(), "doctors:")

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

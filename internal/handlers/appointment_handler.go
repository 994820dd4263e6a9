package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/careslot/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC         *ucAppointment.BookAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:         bookUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ident, ucAppointment.BookAppointmentInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Reason:   req.Reason,
	})
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	out, err := h.listUC.Execute(c.Request.Context(), ident)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), ident, uint(id), req.Status)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeSchedulingError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case "slot_unavailable":
		httperr.Conflict(c, be.Code, "Time slot not available.")
	case "invalid_transition":
		httperr.Conflict(c, be.Code, "Appointment cannot move to that status.")
	case "doctor_not_found":
		httperr.NotFound(c, be.Code, "Doctor not found.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Appointment not found or unauthorized.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Invalid date or time.")
	case "invalid_status":
		httperr.BadRequest(c, be.Code, "Unknown appointment status.")
	default:
		httperr.BadRequest(c, be.Code, be.Code)
	}
}

package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/models"
	ucAdmin "github.com/careslot/clinic-scheduler/internal/usecase/admin"
)

type AdminHandler struct {
	db          *gorm.DB
	statsUC     *ucAdmin.ComputeStats
	listUsersUC *ucAdmin.ListUsers
}

func NewAdminHandler(
	db *gorm.DB,
	statsUC *ucAdmin.ComputeStats,
	listUsersUC *ucAdmin.ListUsers,
) *AdminHandler {
	return &AdminHandler{
		db:          db,
		statsUC:     statsUC,
		listUsersUC: listUsersUC,
	}
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	stats, err := h.statsUC.Execute(c.Request.Context(), ident)
	if err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(200, gin.H{"stats": stats})
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) Users(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	search := strings.TrimSpace(c.Query("search"))

	users, err := h.listUsersUC.Execute(c.Request.Context(), ident, search)
	if err != nil {
		writeAdminError(c, err)
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

func writeAdminError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) && be.Code == "admin_access_required" {
		httperr.Forbidden(c, be.Code, "Admin access required.")
		return
	}

	httperr.Internal(c, "store_error", "Could not read statistics.")
}

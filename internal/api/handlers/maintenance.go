package handlers

import (
	"errors"
	"net/http"

	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles HTTP requests for backup restore
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// ListBackups handles GET /backups
func (h *MaintenanceHandler) ListBackups(c *gin.Context) {
	backups, err := h.maintenanceService.ListBackups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"backups": backups})
}

// RestoreBackup handles POST /backups/:name/restore. The data directory
// is replaced in place; the process must be restarted to pick up the
// restored database file.
func (h *MaintenanceHandler) RestoreBackup(c *gin.Context) {
	if err := h.maintenanceService.RestoreBackup(c.Param("name")); err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "restored", "restart_required": true})
}

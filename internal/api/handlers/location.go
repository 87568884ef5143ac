package handlers

import (
	"errors"
	"net/http"

	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for location tracking
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// SaveLocation handles POST /locations
func (h *LocationHandler) SaveLocation(c *gin.Context) {
	var req service.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.locationService.Save(&req); err != nil {
		if errors.Is(err, apperrors.ErrNoTeam) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

// LatestLocation handles GET /teams/:id/locations/latest
func (h *LocationHandler) LatestLocation(c *gin.Context) {
	location, err := h.locationService.Latest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location recorded"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// TeamTrack handles GET /teams/:id/locations
func (h *LocationHandler) TeamTrack(c *gin.Context) {
	track, err := h.locationService.Track(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, track)
}

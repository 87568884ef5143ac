package handlers

import (
	"context"
	"errors"
	"net/http"

	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/roster"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles HTTP requests for participant operations
type ParticipantHandler struct {
	participantService *service.ParticipantService
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participantService *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// ListParticipants handles GET /participants. Flags: include_non_registered,
// sort, with_teams.
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	opts := service.ListOptions{
		IncludeNonRegistered: c.Query("include_non_registered") == "true",
		SortByName:           c.DefaultQuery("sort", "true") == "true",
		WithTeams:            c.Query("with_teams") == "true",
	}

	participants, err := h.participantService.List(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, participants)
}

// GetParticipant handles GET /participants/:id
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	profile, err := h.participantService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// LookupParticipant handles GET /participants/lookup with an email or
// username query parameter.
func (h *ParticipantHandler) LookupParticipant(c *gin.Context) {
	email := c.Query("email")
	username := c.Query("username")
	if email == "" && username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or username parameter is required"})
		return
	}

	var profile interface{}
	var err error
	if email != "" {
		profile, err = h.participantService.GetByEmail(email)
	} else {
		profile, err = h.participantService.GetByUsername(username)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) || errors.Is(err, apperrors.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// rosterPayload is a pushed roster snapshot. It satisfies the roster
// source contract so the sync service consumes it directly.
type rosterPayload struct {
	Records []rosterRecord `json:"records" binding:"required"`
}

type rosterRecord struct {
	ID        string `json:"id" binding:"required"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p *rosterPayload) FetchParticipants(_ context.Context) ([]roster.Record, error) {
	records := make([]roster.Record, len(p.Records))
	for i, r := range p.Records {
		records[i] = roster.Record{
			ID:        r.ID,
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
		}
	}
	return records, nil
}

// SyncParticipants handles POST /participants/sync with a roster
// snapshot in the body.
func (h *ParticipantHandler) SyncParticipants(c *gin.Context) {
	var payload rosterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.participantService.Sync(c.Request.Context(), &payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"synced": count})
}

// AddExtraParticipant handles POST /participants/extra
func (h *ParticipantHandler) AddExtraParticipant(c *gin.Context) {
	var req service.AddExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.participantService.AddExtra(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// UpdateProfile handles PUT /participants/profile as a multipart form
// with an optional photo part.
func (h *ParticipantHandler) UpdateProfile(c *gin.Context) {
	req := service.UpdateProfileRequest{
		Username:         c.PostForm("username"),
		Email:            c.PostForm("email"),
		Bio:              c.PostForm("bio"),
		EmergencyContact: c.PostForm("emergency_contact"),
	}

	if fh, err := c.FormFile("photo"); err == nil {
		upload, closer, err := openUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer closer.Close()
		req.Photo = upload
	}

	if err := h.participantService.UpdateProfile(&req); err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		var storageFault *apperrors.StorageFault
		if errors.As(err, &storageFault) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// PreauthorizedEmails handles GET /participants/preauthorized
func (h *ParticipantHandler) PreauthorizedEmails(c *gin.Context) {
	emails, err := h.participantService.PreauthorizedEmails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": emails})
}

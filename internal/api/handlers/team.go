package handlers

import (
	"errors"
	"net/http"

	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// SaveTeam handles POST /teams as a multipart form. An empty team_id
// creates a team; a known one replaces it whole.
func (h *TeamHandler) SaveTeam(c *gin.Context) {
	req := service.SaveTeamRequest{
		TeamID:    c.PostForm("team_id"),
		TeamName:  c.PostForm("team_name"),
		TeamMotto: c.PostForm("team_motto"),
		TeamWeb:   c.PostForm("team_web"),
		Member1:   c.PostForm("member1"),
		Member2:   c.PostForm("member2"),
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

	team, err := h.teamService.Save(&req)
	if err != nil {
		var storageFault *apperrors.StorageFault
		if errors.As(err, &storageFault) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetParticipantTeam handles GET /participants/:id/team. A participant
// without a team yields 404.
func (h *TeamHandler) GetParticipantTeam(c *gin.Context) {
	team, err := h.teamService.GetForParticipant(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrTeamNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetVisibility handles GET /teams/:id/visibility
func (h *TeamHandler) GetVisibility(c *gin.Context) {
	visible, err := h.teamService.Visibility(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location_visibility": visible})
}

// ToggleVisibility handles POST /teams/:id/visibility/toggle and
// returns the new state.
func (h *TeamHandler) ToggleVisibility(c *gin.Context) {
	visible, err := h.teamService.ToggleVisibility(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location_visibility": visible})
}

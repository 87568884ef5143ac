package handlers

import (
	"errors"
	"net/http"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoringHandler handles HTTP requests for scores and availability
type ScoringHandler struct {
	scoringService *service.ScoringService
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(scoringService *service.ScoringService) *ScoringHandler {
	return &ScoringHandler{
		scoringService: scoringService,
	}
}

// GetTeamOverview handles GET /teams/:id/overview
func (h *ScoringHandler) GetTeamOverview(c *gin.Context) {
	overview, err := h.scoringService.TeamOverview(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetLeaderboard handles GET /leaderboard
func (h *ScoringHandler) GetLeaderboard(c *gin.Context) {
	board, err := h.scoringService.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetAvailableActions handles GET /participants/:id/available-actions
// with a required action_type of challenge or checkpoint.
func (h *ScoringHandler) GetAvailableActions(c *gin.Context) {
	actionType := models.ActionType(c.Query("action_type"))

	actions, err := h.scoringService.AvailableActions(c.Param("id"), actionType)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, actions)
}

// GetAvailableTeammates handles GET /participants/:id/available-teammates
func (h *ScoringHandler) GetAvailableTeammates(c *gin.Context) {
	candidates, err := h.scoringService.AvailableTeammates(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

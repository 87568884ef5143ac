package handlers

import (
	"net/http"

	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the challenge and checkpoint
// catalogs
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListChallenges handles GET /challenges
func (h *CatalogHandler) ListChallenges(c *gin.Context) {
	challenges, err := h.catalogService.ListChallenges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// ListCheckpoints handles GET /checkpoints
func (h *CatalogHandler) ListCheckpoints(c *gin.Context) {
	checkpoints, err := h.catalogService.ListCheckpoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, checkpoints)
}

// ImportChallenges handles POST /challenges/import with a CSV file part
// named "file".
func (h *CatalogHandler) ImportChallenges(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	imported, err := h.catalogService.ImportChallenges(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// ImportCheckpoints handles POST /checkpoints/import with a CSV file
// part named "file".
func (h *CatalogHandler) ImportCheckpoints(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	imported, err := h.catalogService.ImportCheckpoints(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

package handlers

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"event-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored files through the cached storage layer.
type FileHandler struct {
	files *storage.Store
}

// NewFileHandler creates a new file handler
func NewFileHandler(files *storage.Store) *FileHandler {
	return &FileHandler{
		files: files,
	}
}

// GetFile handles GET /files/*filepath. Content served here goes
// through the bounded read cache, so repeated fetches of the same
// photo do not hit the backend.
func (h *FileHandler) GetFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file path is required"})
		return
	}
	if !validFilePath(path) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file path"})
		return
	}

	content := h.files.ReadFile(path)
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, content)
}

// validFilePath rejects path elements that would resolve outside the
// files root. The raw URL path reaches the wildcard parameter without
// cleaning, so a crafted request can carry ".." segments.
func validFilePath(path string) bool {
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

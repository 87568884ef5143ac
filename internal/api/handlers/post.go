package handlers

import (
	"errors"
	"net/http"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler handles HTTP requests for post operations
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost handles POST /posts as a multipart form with zero or more
// file parts named "files".
func (h *PostHandler) CreatePost(c *gin.Context) {
	req := service.SavePostRequest{
		PaxID:      c.PostForm("pax_id"),
		ActionType: models.ActionType(c.PostForm("action_type")),
		ActionName: c.PostForm("action_name"),
		Comment:    c.PostForm("comment"),
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, fh := range form.File["files"] {
		upload, closer, err := openUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer closer.Close()
		req.Files = append(req.Files, *upload)
	}

	post, err := h.postService.SavePost(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoTeam) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
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

	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts handles GET /posts with an optional team_name filter.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Query("team_name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListTeamPosts handles GET /teams/:id/posts
func (h *PostHandler) ListTeamPosts(c *gin.Context) {
	posts, err := h.postService.ListByTeam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

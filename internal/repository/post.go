package repository

import (
	"errors"

	"event-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post row. The file manifest must already be
// written to storage; the row only references the resulting paths.
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by id; nil when absent.
func (r *PostRepository) GetByID(postID string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "post_id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByTeam retrieves all posts of one team in insertion order.
func (r *PostRepository) ListByTeam(teamID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts, "team_id = ?", teamID).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// List retrieves all posts in insertion order.
func (r *PostRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CompletedActionNames returns the distinct action names a team has
// already posted for the given action type. These are the free-text post
// names, used for exact-match availability filtering.
func (r *PostRepository) CompletedActionNames(teamID string, actionType models.ActionType) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Post{}).
		Distinct("action_name").
		Where("team_id = ? AND action_type = ?", teamID, actionType).
		Pluck("action_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

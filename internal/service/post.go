package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/scoring"
	"event-portal-backend/internal/storage"
)

const createdTimeLayout = "2006-01-02 15:04:05"

// PostService handles business logic for posts
type PostService struct {
	repo        repository.PostRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	catalogRepo repository.CatalogRepositoryInterface
	files       *storage.Store
	topDir      string
	validator   *validator.Validate
	log         *logger.Logger
	now         func() time.Time
}

// NewPostService creates a new post service
func NewPostService(
	repo repository.PostRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	catalogRepo repository.CatalogRepositoryInterface,
	files *storage.Store,
	topDir string,
	validate *validator.Validate,
) *PostService {
	return &PostService{
		repo:        repo,
		teamRepo:    teamRepo,
		catalogRepo: catalogRepo,
		files:       files,
		topDir:      topDir,
		validator:   validate,
		log:         logger.New(),
		now:         time.Now,
	}
}

// SavePostRequest submits a story, challenge completion or checkpoint
// visit on behalf of a participant.
type SavePostRequest struct {
	PaxID      string            `json:"pax_id" validate:"required"`
	ActionType models.ActionType `json:"action_type" validate:"required,oneof=challenge checkpoint story"`
	ActionName string            `json:"action_name" validate:"required"`
	Comment    string            `json:"comment"`
	Files      []Upload          `json:"-"`
}

// SavePost stores the attached files and then inserts the post row, in
// that order: a crash in between leaves an orphaned file, never a row
// referencing missing content. A participant without a team cannot
// post; that is a caller contract violation.
func (s *PostService) SavePost(req *SavePostRequest) (*models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetForParticipant(req.PaxID)
	if err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	if team == nil {
		return nil, apperrors.ErrNoTeam
	}

	title, err := s.resolveTitle(req.ActionType, req.ActionName)
	if err != nil {
		return nil, err
	}

	dir := strings.Join([]string{s.topDir, string(req.ActionType), title, slug.Make(team.TeamName)}, "/")

	manifest := make(models.FileList, 0, len(req.Files))
	for _, file := range req.Files {
		content, err := io.ReadAll(file.Body)
		if err != nil {
			return nil, fmt.Errorf("read upload %s: %w", file.Name, err)
		}
		path := dir + "/" + file.Name
		if err := s.files.WriteFile(path, content); err != nil {
			return nil, err
		}
		manifest = append(manifest, models.FileRef{Path: path, Type: file.ContentType})
	}

	post := &models.Post{
		PostID:     uuid.NewString(),
		PaxID:      req.PaxID,
		TeamID:     team.TeamID,
		ActionType: req.ActionType,
		ActionName: title,
		Comment:    req.Comment,
		Created:    s.now().Format(createdTimeLayout),
		Files:      manifest,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

// resolveTitle maps the submitted action name onto its canonical
// catalog entry for scored types. Stories keep their free-text title.
func (s *PostService) resolveTitle(actionType models.ActionType, actionName string) (string, error) {
	if !actionType.Scored() {
		return actionName, nil
	}

	var (
		actions []scoring.Action
		err     error
	)
	switch actionType {
	case models.ActionTypeChallenge:
		var challenges []models.Challenge
		challenges, err = s.catalogRepo.ListChallenges()
		actions = scoring.FromChallenges(challenges)
	case models.ActionTypeCheckpoint:
		var checkpoints []models.Checkpoint
		checkpoints, err = s.catalogRepo.ListCheckpoints()
		actions = scoring.FromCheckpoints(checkpoints)
	}
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	if action := scoring.FirstPrefixMatch(actions, actionName); action != nil {
		return action.Name, nil
	}
	s.log.WithFields(map[string]interface{}{
		"action_type": actionType,
		"action_name": actionName,
	}).Warn("action not found in catalog, keeping submitted name")
	return actionName, nil
}

// GetByID retrieves a post; ErrPostNotFound when absent.
func (s *PostService) GetByID(postID string) (*models.Post, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

// PostView is a post joined with its team's name.
type PostView struct {
	models.Post
	TeamName string `json:"team_name"`
}

// List retrieves all posts joined with team names, optionally filtered
// by team name.
func (s *PostService) List(teamNameFilter string) ([]PostView, error) {
	posts, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teamByID := make(map[string]*models.Team, len(teams))
	for i := range teams {
		teamByID[teams[i].TeamID] = &teams[i]
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		team, ok := teamByID[post.TeamID]
		if !ok {
			// posts only surface joined with their team
			continue
		}
		if teamNameFilter != "" && team.TeamName != teamNameFilter {
			continue
		}
		views = append(views, PostView{Post: post, TeamName: team.TeamName})
	}
	return views, nil
}

// ListByTeam retrieves all posts of one team.
func (s *PostService) ListByTeam(teamID string) ([]models.Post, error) {
	return s.repo.ListByTeam(teamID)
}

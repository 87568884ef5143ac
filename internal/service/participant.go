package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/cache"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/identity"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/roster"
	"event-portal-backend/internal/storage"
)

// participant names carry Czech diacritics; sort them the way a local
// reader expects instead of by raw code point
var nameCollator = collate.New(language.Czech, collate.IgnoreCase)

var titleCaser = cases.Title(language.Und)

// ParticipantService handles business logic for participants
type ParticipantService struct {
	repo      repository.ParticipantRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	accounts  accounts.Source
	files     *storage.Store
	topDir    string
	validator *validator.Validate
	log       *logger.Logger
}

// NewParticipantService creates a new participant service
func NewParticipantService(
	repo repository.ParticipantRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	accountSource accounts.Source,
	files *storage.Store,
	topDir string,
	validate *validator.Validate,
) *ParticipantService {
	return &ParticipantService{
		repo:      repo,
		teamRepo:  teamRepo,
		accounts:  accountSource,
		files:     files,
		topDir:    topDir,
		validator: validate,
		log:       logger.New(),
	}
}

// ParticipantView is a resolved participant, optionally joined with
// their team.
type ParticipantView struct {
	identity.Profile
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

// ListOptions controls the participant listing.
type ListOptions struct {
	IncludeNonRegistered bool
	SortByName           bool
	WithTeams            bool
}

// Sync pulls the current roster and inserts the participants that are
// not yet known. Existing rows are never overwritten. All cache
// domains are flushed afterwards.
func (s *ParticipantService) Sync(ctx context.Context, source roster.Source) (int, error) {
	records, err := source.FetchParticipants(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch roster: %w", err)
	}

	participants := make([]models.Participant, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" || rec.Email == "" {
			s.log.WithField("email", rec.Email).Warn("skipping roster record without id or email")
			continue
		}
		participants = append(participants, models.Participant{
			ID:      rec.ID,
			Email:   rec.Email,
			NameWeb: titleCaser.String(rec.FirstName) + " " + titleCaser.String(rec.LastName),
		})
	}

	if err := s.repo.UpsertAll(participants); err != nil {
		return 0, fmt.Errorf("store roster: %w", err)
	}

	cache.FlushAll()
	s.log.WithField("count", len(participants)).Info("roster synced")
	return len(participants), nil
}

// AddExtraRequest adds a participant manually, outside the commerce
// roster.
type AddExtraRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// AddExtra registers a manually added participant with a synthetic id.
func (s *ParticipantService) AddExtra(req *AddExtraRequest) (*models.Participant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	p := &models.Participant{
		ID:      uuid.NewString(),
		Email:   strings.ToLower(req.Email),
		NameWeb: req.Name,
	}
	if err := s.repo.Upsert(p); err != nil {
		return nil, fmt.Errorf("add participant: %w", err)
	}
	return p, nil
}

// GetByID returns the resolved participant view; ErrParticipantNotFound
// when the id is unknown.
func (s *ParticipantService) GetByID(id string) (*identity.Profile, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if p == nil {
		return nil, apperrors.ErrParticipantNotFound
	}
	profile := identity.Resolve(p, s.accounts.GetByEmail(p.Email))
	return &profile, nil
}

// GetByEmail returns the resolved participant view;
// ErrParticipantNotFound when the email is unknown.
func (s *ParticipantService) GetByEmail(email string) (*identity.Profile, error) {
	p, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if p == nil {
		return nil, apperrors.ErrParticipantNotFound
	}
	profile := identity.Resolve(p, s.accounts.GetByEmail(p.Email))
	return &profile, nil
}

// GetByUsername resolves the acting identity from a login username.
func (s *ParticipantService) GetByUsername(username string) (*identity.Profile, error) {
	acct := s.accounts.GetByUsername(username)
	if acct == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	p, err := s.repo.GetByEmail(acct.Email)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if p == nil {
		return nil, apperrors.ErrParticipantNotFound
	}
	profile := identity.Resolve(p, acct)
	return &profile, nil
}

// List returns resolved participant views. With WithTeams each view
// carries the id and name of the team the participant belongs to, if
// any.
func (s *ParticipantService) List(opts ListOptions) ([]ParticipantView, error) {
	participants, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	views := make([]ParticipantView, 0, len(participants))
	for i := range participants {
		p := &participants[i]
		acct := s.accounts.GetByEmail(p.Email)
		if acct == nil && !opts.IncludeNonRegistered {
			continue
		}
		views = append(views, ParticipantView{Profile: identity.Resolve(p, acct)})
	}

	if opts.SortByName {
		sort.SliceStable(views, func(i, j int) bool {
			return nameCollator.CompareString(views[i].Name, views[j].Name) < 0
		})
	}

	if opts.WithTeams {
		if err := s.joinTeams(views); err != nil {
			return nil, err
		}
	}

	return views, nil
}

func (s *ParticipantService) joinTeams(views []ParticipantView) error {
	teams, err := s.teamRepo.List()
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	paxToTeam := make(map[string]*models.Team, 2*len(teams))
	for i := range teams {
		team := &teams[i]
		paxToTeam[team.Member1] = team
		if team.Member2 != nil {
			paxToTeam[*team.Member2] = team
		}
	}

	for i := range views {
		if team, ok := paxToTeam[views[i].ID]; ok {
			views[i].TeamID = team.TeamID
			views[i].TeamName = team.TeamName
		}
	}
	return nil
}

// UpdateProfileRequest updates the editable profile fields of an
// existing participant, keyed by email.
type UpdateProfileRequest struct {
	Username         string  `json:"username" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Bio              string  `json:"bio"`
	EmergencyContact string  `json:"emergency_contact"`
	Photo            *Upload `json:"-"`
}

// UpdateProfile sets bio and emergency contact, and replaces the photo
// when one is attached. The photo bytes are written to storage first;
// only a successful write updates the row's path reference.
func (s *ParticipantService) UpdateProfile(req *UpdateProfileRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var photoPath *string
	if req.Photo != nil {
		content, err := io.ReadAll(req.Photo.Body)
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		path := strings.Join([]string{s.topDir, "participants", slug.Make(req.Username), req.Photo.Name}, "/")
		if err := s.files.WriteFile(path, content); err != nil {
			return err
		}
		photoPath = &path
	}

	err := s.repo.UpdateProfile(req.Email, req.Bio, req.EmergencyContact, photoPath)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrParticipantNotFound
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// PreauthorizedEmails returns the lower-cased set of addresses allowed
// to create a login account: every roster email plus the explicit
// allow-list.
func (s *ParticipantService) PreauthorizedEmails() ([]string, error) {
	emails, err := s.repo.Emails()
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	return identity.PreauthorizedEmails(emails, s.accounts.ExtraEmails()), nil
}

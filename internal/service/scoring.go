package service

import (
	"fmt"
	"sort"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/identity"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/scoring"
)

// ScoringService aggregates posts into team scores and computes what a
// team can still do: remaining actions and free teammate candidates.
type ScoringService struct {
	teamRepo        repository.TeamRepositoryInterface
	postRepo        repository.PostRepositoryInterface
	catalogRepo     repository.CatalogRepositoryInterface
	participantRepo repository.ParticipantRepositoryInterface
	accounts        accounts.Source
	log             *logger.Logger
}

// NewScoringService creates a new scoring service
func NewScoringService(
	teamRepo repository.TeamRepositoryInterface,
	postRepo repository.PostRepositoryInterface,
	catalogRepo repository.CatalogRepositoryInterface,
	participantRepo repository.ParticipantRepositoryInterface,
	accountSource accounts.Source,
) *ScoringService {
	return &ScoringService{
		teamRepo:        teamRepo,
		postRepo:        postRepo,
		catalogRepo:     catalogRepo,
		participantRepo: participantRepo,
		accounts:        accountSource,
		log:             logger.New(),
	}
}

// ScoredPost is a post annotated with its resolved point value.
type ScoredPost struct {
	models.Post
	Points int `json:"points"`
}

// TeamOverview is the aggregate per-team record: resolved member names,
// the team total and the scored posts for drill-down display.
type TeamOverview struct {
	TeamID      string       `json:"team_id"`
	TeamName    string       `json:"team_name"`
	Member1     string       `json:"member1"`
	Member1Name string       `json:"member1_name"`
	Member2     *string      `json:"member2,omitempty"`
	Member2Name string       `json:"member2_name,omitempty"`
	Points      int          `json:"points"`
	Posts       []ScoredPost `json:"posts"`
}

// catalogs bundles both point-bearing catalogs, loaded once per
// aggregation.
type catalogs struct {
	challenges  []scoring.Action
	checkpoints []scoring.Action
}

func (c *catalogs) forType(actionType models.ActionType) []scoring.Action {
	switch actionType {
	case models.ActionTypeChallenge:
		return c.challenges
	case models.ActionTypeCheckpoint:
		return c.checkpoints
	default:
		return nil
	}
}

func (s *ScoringService) loadCatalogs() (*catalogs, error) {
	challenges, err := s.catalogRepo.ListChallenges()
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	checkpoints, err := s.catalogRepo.ListCheckpoints()
	if err != nil {
		return nil, fmt.Errorf("load checkpoints: %w", err)
	}
	return &catalogs{
		challenges:  scoring.FromChallenges(challenges),
		checkpoints: scoring.FromCheckpoints(checkpoints),
	}, nil
}

func (s *ScoringService) scorePosts(posts []models.Post, cats *catalogs) ([]ScoredPost, int) {
	scored := make([]ScoredPost, len(posts))
	total := 0
	for i, post := range posts {
		points := 0
		if post.ActionType.Scored() {
			points = scoring.Points(post.ActionType, post.ActionName, cats.forType(post.ActionType))
			if points == 0 && scoring.FirstPrefixMatch(cats.forType(post.ActionType), post.ActionName) == nil {
				s.log.WithFields(map[string]interface{}{
					"action_type": post.ActionType,
					"action_name": post.ActionName,
				}).Warn("post action not found in catalog, scoring zero")
			}
		}
		scored[i] = ScoredPost{Post: post, Points: points}
		total += points
	}
	return scored, total
}

func (s *ScoringService) memberName(paxID string) string {
	p, err := s.participantRepo.GetByID(paxID)
	if err != nil || p == nil {
		return ""
	}
	return identity.Resolve(p, s.accounts.GetByEmail(p.Email)).Name
}

func (s *ScoringService) overview(team *models.Team, posts []models.Post, cats *catalogs) TeamOverview {
	scored, total := s.scorePosts(posts, cats)

	ov := TeamOverview{
		TeamID:      team.TeamID,
		TeamName:    team.TeamName,
		Member1:     team.Member1,
		Member1Name: s.memberName(team.Member1),
		Member2:     team.Member2,
		Points:      total,
		Posts:       scored,
	}
	if team.Member2 != nil {
		ov.Member2Name = s.memberName(*team.Member2)
	}
	return ov
}

// TeamOverview aggregates one team; ErrTeamNotFound when the team is
// unknown.
func (s *ScoringService) TeamOverview(teamID string) (*TeamOverview, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if team == nil {
		return nil, apperrors.ErrTeamNotFound
	}

	posts, err := s.postRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	cats, err := s.loadCatalogs()
	if err != nil {
		return nil, err
	}

	ov := s.overview(team, posts, cats)
	return &ov, nil
}

// Leaderboard aggregates every team exactly once, in team-listing
// order. Display sorting is the caller's concern.
func (s *ScoringService) Leaderboard() ([]TeamOverview, error) {
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	cats, err := s.loadCatalogs()
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string][]models.Post)
	for _, post := range posts {
		byTeam[post.TeamID] = append(byTeam[post.TeamID], post)
	}

	board := make([]TeamOverview, len(teams))
	for i := range teams {
		board[i] = s.overview(&teams[i], byTeam[teams[i].TeamID], cats)
	}
	return board, nil
}

// AvailableActions returns the catalog entries of the given type the
// participant's team has not completed yet. Completed names come from
// free-text posts and are compared exactly, not by prefix.
func (s *ScoringService) AvailableActions(paxID string, actionType models.ActionType) ([]scoring.Action, error) {
	if !actionType.Scored() {
		return nil, &apperrors.ValidationError{Field: "action_type", Message: "must be challenge or checkpoint"}
	}

	teamID := ""
	team, err := s.teamRepo.GetForParticipant(paxID)
	if err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	if team != nil {
		teamID = team.TeamID
	}

	completed, err := s.postRepo.CompletedActionNames(teamID, actionType)
	if err != nil {
		return nil, fmt.Errorf("list completed actions: %w", err)
	}

	cats, err := s.loadCatalogs()
	if err != nil {
		return nil, err
	}
	return scoring.AvailableActions(cats.forType(actionType), completed), nil
}

// TeammateCandidate is one entry of the teammate picker.
type TeammateCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableTeammates lists who the participant can team up with: the
// current teammate first (they are otherwise hidden by the
// already-teamed filter), then the no-partner option, then every
// roster participant who is not on a team. The requester is never a
// candidate for themselves.
func (s *ScoringService) AvailableTeammates(paxID string) ([]TeammateCandidate, error) {
	participants, err := s.participantRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teamed := make(map[string]struct{}, 2*len(teams))
	for i := range teams {
		teamed[teams[i].Member1] = struct{}{}
		if teams[i].Member2 != nil {
			teamed[*teams[i].Member2] = struct{}{}
		}
	}

	var teammate *string
	if team, err := s.teamRepo.GetForParticipant(paxID); err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	} else if team != nil {
		teammate = team.TeammateOf(paxID)
	}

	candidates := []TeammateCandidate{}
	if teammate != nil {
		candidates = append(candidates, TeammateCandidate{
			ID:   *teammate,
			Name: s.memberName(*teammate),
		})
	}
	candidates = append(candidates, TeammateCandidate{ID: NoPartnerID, Name: "(no partner)"})

	free := []TeammateCandidate{}
	for i := range participants {
		p := &participants[i]
		if p.ID == paxID {
			continue
		}
		if _, onTeam := teamed[p.ID]; onTeam {
			continue
		}
		profile := identity.Resolve(p, s.accounts.GetByEmail(p.Email))
		free = append(free, TeammateCandidate{ID: p.ID, Name: profile.Name})
	}
	sort.SliceStable(free, func(i, j int) bool {
		return nameCollator.CompareString(free[i].Name, free[j].Name) < 0
	})
	return append(candidates, free...), nil
}

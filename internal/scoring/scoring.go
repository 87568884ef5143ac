// Package scoring holds the engine-independent pieces of the scoring
// and availability logic: prefix-based catalog lookup and the
// exact-match completion filter. Post action names are free text.
// The two sides match differently on purpose: lookup accepts suffixed
// variants of a canonical name, availability filtering compares exact
// strings. Do not unify.
package scoring

import (
	"strings"

	"event-portal-backend/internal/database/models"
)

// Action is one catalog entry, challenge or checkpoint alike.
type Action struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Points      int      `json:"points"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Challenge   string   `json:"challenge,omitempty"`
}

// FromChallenges converts catalog rows, keeping their order.
func FromChallenges(challenges []models.Challenge) []Action {
	actions := make([]Action, len(challenges))
	for i, c := range challenges {
		actions[i] = Action{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			Points:      c.Points,
		}
	}
	return actions
}

// FromCheckpoints converts catalog rows, keeping their order.
func FromCheckpoints(checkpoints []models.Checkpoint) []Action {
	actions := make([]Action, len(checkpoints))
	for i, c := range checkpoints {
		actions[i] = Action{
			Name:        c.Name,
			Description: c.Description,
			Points:      c.Points,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Challenge:   c.Challenge,
		}
	}
	return actions
}

// FirstPrefixMatch returns the first catalog entry whose name starts
// with the queried action name, or nil. Deterministic for a fixed
// catalog ordering. Handles annotated variants of the same canonical
// name, e.g. a post for "Checkpoint 3" matching the entry
// "Checkpoint 3 - bonus".
func FirstPrefixMatch(actions []Action, actionName string) *Action {
	for i := range actions {
		if strings.HasPrefix(actions[i].Name, actionName) {
			return &actions[i]
		}
	}
	return nil
}

// Points resolves the point value of a post. Stories never score;
// scored types resolve through the prefix lookup and contribute zero
// when no catalog entry matches.
func Points(actionType models.ActionType, actionName string, actions []Action) int {
	if !actionType.Scored() {
		return 0
	}
	action := FirstPrefixMatch(actions, actionName)
	if action == nil {
		return 0
	}
	return action.Points
}

// AvailableActions returns the catalog entries whose name is not among
// the team's already-completed action names. The completed side comes
// from free-text posts, so this is an exact string comparison.
func AvailableActions(actions []Action, completed []string) []Action {
	done := make(map[string]struct{}, len(completed))
	for _, name := range completed {
		done[name] = struct{}{}
	}

	available := make([]Action, 0, len(actions))
	for _, a := range actions {
		if _, ok := done[a.Name]; !ok {
			available = append(available, a)
		}
	}
	return available
}

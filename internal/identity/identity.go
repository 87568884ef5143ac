// Package identity merges the two independently-keyed participant
// sources into one logical view: the commerce-derived roster (keyed by
// email) and the login-account roster (keyed by username). The resolver
// is pure; it caches nothing and relies on the rosters being resolved
// upstream.
package identity

import (
	"strings"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/database/models"
)

// Profile is the resolved, immutable participant view. Username, Name
// and Role come from the login account when one matches the roster
// email; otherwise they fall back to the roster display name.
type Profile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	Role             string `json:"role,omitempty"`
	NameWeb          string `json:"name_web"`
	Bio              string `json:"bio,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	Photo            string `json:"photo,omitempty"`
	Registered       bool   `json:"registered"`
}

// Resolve overlays a roster participant with their login account.
// Account may be nil when the participant never registered a login.
func Resolve(p *models.Participant, account *accounts.Account) Profile {
	profile := Profile{
		ID:               p.ID,
		Email:            p.Email,
		NameWeb:          p.NameWeb,
		Bio:              p.Bio,
		EmergencyContact: p.EmergencyContact,
		Photo:            p.Photo,
	}

	if account != nil {
		profile.Username = account.Username
		profile.Name = account.Name
		profile.Role = account.Role
		profile.Registered = true
	}

	if profile.Name == "" {
		profile.Name = p.NameWeb
	}
	if profile.Username == "" {
		profile.Username = profile.Name
	}

	return profile
}

// PreauthorizedEmails is the set of addresses allowed to create a login
// account: the full roster union any explicitly allow-listed extras,
// each lower-cased for comparison.
func PreauthorizedEmails(rosterEmails, extraEmails []string) []string {
	out := make([]string, 0, len(rosterEmails)+len(extraEmails))
	for _, e := range rosterEmails {
		out = append(out, strings.ToLower(e))
	}
	for _, e := range extraEmails {
		out = append(out, strings.ToLower(e))
	}
	return out
}

// Package accounts is the login-account collaborator: a YAML-backed
// credential store keyed by username, queryable by username or email.
// Credential hashing and the registration UI live outside the core; the
// password field here is an opaque hash.
package accounts

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "event-portal-backend/internal/errors"
)

// Account is one login account with its profile overlay fields.
type Account struct {
	Username string `yaml:"-" json:"username"`
	Email    string `yaml:"email" json:"email"`
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	Password string `yaml:"password" json:"-"` // opaque hash
}

// ExtraAccount is an allow-listed address that may register a login
// account without appearing on the participant roster.
type ExtraAccount struct {
	Role string `yaml:"role"`
}

// Cookie carries the session cookie settings consumed by the (out of
// scope) authentication front-end; kept so the file round-trips intact.
type Cookie struct {
	Name       string `yaml:"name"`
	Key        string `yaml:"key"`
	ExpiryDays int    `yaml:"expiry_days"`
}

type credentials struct {
	Usernames map[string]*Account `yaml:"usernames"`
}

type file struct {
	Credentials credentials             `yaml:"credentials"`
	Cookie      Cookie                  `yaml:"cookie"`
	Extra       map[string]ExtraAccount `yaml:"extra,omitempty"`
}

// Store reads and writes the accounts file. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	data file
}

// Source is the login-account collaborator interface consumed by the
// services.
type Source interface {
	GetByUsername(username string) *Account
	GetByEmail(email string) *Account
	ExtraEmails() []string
}

// Open loads the accounts file. A missing file yields an empty store so
// a fresh deployment starts without accounts.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	s.data.Credentials.Usernames = map[string]*Account{}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse accounts file: %w", err)
	}
	if s.data.Credentials.Usernames == nil {
		s.data.Credentials.Usernames = map[string]*Account{}
	}
	for username, acct := range s.data.Credentials.Usernames {
		acct.Username = username
	}

	return s, nil
}

// GetByUsername returns the account for a username; nil when absent.
func (s *Store) GetByUsername(username string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.data.Credentials.Usernames[username]
	if !ok {
		return nil
	}
	copy := *acct
	return &copy
}

// GetByEmail returns the account matching an email, compared
// lower-cased; nil when absent.
func (s *Store) GetByEmail(email string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, acct := range s.data.Credentials.Usernames {
		if strings.ToLower(acct.Email) == email {
			copy := *acct
			return &copy
		}
	}
	return nil
}

// Add registers a new account under its username.
func (s *Store) Add(acct Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Credentials.Usernames[acct.Username] = &acct
	return s.save()
}

// SetPassword replaces the stored credential hash for a username.
func (s *Store) SetPassword(username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.data.Credentials.Usernames[username]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	acct.Password = passwordHash
	return s.save()
}

// ExtraAccount returns the allow-list entry for an email; nil when the
// address is not allow-listed.
func (s *Store) ExtraAccount(email string) *ExtraAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for addr, extra := range s.data.Extra {
		if strings.ToLower(addr) == email {
			copy := extra
			return &copy
		}
	}
	return nil
}

// ExtraEmails lists the explicitly allow-listed addresses.
func (s *Store) ExtraEmails() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emails := make([]string, 0, len(s.data.Extra))
	for addr := range s.data.Extra {
		emails = append(emails, addr)
	}
	return emails
}

func (s *Store) save() error {
	raw, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}

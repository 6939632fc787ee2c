// Package auth resolves login credentials to roles.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cfcs/internal/config"
	apperrors "cfcs/internal/errors"
	"cfcs/internal/models"
)

// Authenticator maps a username and password to a role.
type Authenticator interface {
	Authenticate(username, password string) (models.Role, error)
}

// Credential is one configured login.
type Credential struct {
	Username     string
	PasswordHash []byte
	Role         models.Role
}

// NewCredential builds a credential from either a bcrypt hash or a plain
// password. A non-empty hash wins; a plain password is hashed here so it is
// never kept in memory in clear text.
func NewCredential(username, password, hash string, role models.Role) (Credential, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credential{}, fmt.Errorf("%s username is empty", role)
	}
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return Credential{}, fmt.Errorf("%s password hash: %w", role, err)
		}
		return Credential{Username: username, PasswordHash: []byte(hash), Role: role}, nil
	}
	if password == "" {
		return Credential{}, fmt.Errorf("%s password is empty", role)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, fmt.Errorf("hash %s password: %w", role, err)
	}
	return Credential{Username: username, PasswordHash: h, Role: role}, nil
}

// StaticProvider authenticates against a fixed list of credentials.
type StaticProvider struct {
	creds []Credential
}

// NewStaticProvider creates a provider over creds.
func NewStaticProvider(creds ...Credential) *StaticProvider {
	return &StaticProvider{creds: creds}
}

// FromConfig builds the admin and viewer credentials from cfg.
func FromConfig(cfg *config.Config) (*StaticProvider, error) {
	admin, err := NewCredential(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	viewer, err := NewCredential(cfg.ViewerUsername, cfg.ViewerPassword, cfg.ViewerPasswordHash, models.RoleViewer)
	if err != nil {
		return nil, err
	}
	if admin.Username == viewer.Username {
		return nil, fmt.Errorf("admin and viewer share the username %q", admin.Username)
	}
	return NewStaticProvider(admin, viewer), nil
}

// Authenticate returns the role of the matching credential, or
// ErrInvalidCredentials.
func (p *StaticProvider) Authenticate(username, password string) (models.Role, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}
	for _, c := range p.creds {
		if subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) != 1 {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) != nil {
			return "", apperrors.ErrInvalidCredentials
		}
		return c.Role, nil
	}
	return "", apperrors.ErrInvalidCredentials
}

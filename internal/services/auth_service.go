package services

import (
	"strings"

	"cfcs/internal/auth"
	"cfcs/internal/models"
)

// authService handles login.
type authService struct {
	authenticator auth.Authenticator
}

// NewAuthService creates a new AuthServicer backed by authenticator.
func NewAuthService(authenticator auth.Authenticator) AuthServicer {
	return &authService{authenticator: authenticator}
}

// Login resolves the credentials to a user with a role.
func (s *authService) Login(username, password string) (*models.User, error) {
	role, err := s.authenticator.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	return &models.User{Username: strings.TrimSpace(username), Role: role}, nil
}

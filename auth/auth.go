// Package auth is the authentication collaborator: a static users table with
// role lookup. The core only consumes the guard point (VerifyAdmin); real
// identity management lives outside this service.
package auth

import (
	"errors"
	"strings"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
)

// Compile-time check to ensure Service implements interfaces.Authenticator
var _ interfaces.Authenticator = (*Service)(nil)

var (
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when the caller lacks the admin role.
	ErrUnauthorized = errors.New("admin access required")
)

type account struct {
	password string
	role     string
	name     string
}

// Service authenticates against a static, in-memory users table
type Service struct {
	users map[string]account
}

// NewService creates the auth service with the demo users table
func NewService() *Service {
	return &Service{
		users: map[string]account{
			"demo@medfinder.com":  {password: "demo123", role: entities.RoleUser, name: "Demo User"},
			"admin@medfinder.com": {password: "admin123", role: entities.RoleAdmin, name: "Admin User"},
			"user@medfinder.com":  {password: "user123", role: entities.RoleUser, name: "Regular User"},
		},
	}
}

// Login authenticates an email/password pair and returns the user identity
func (s *Service) Login(email, password string) (entities.User, error) {
	user, ok := s.users[strings.ToLower(email)]
	if !ok || user.password != password {
		return entities.User{}, ErrInvalidCredentials
	}

	return entities.User{
		Email: strings.ToLower(email),
		Role:  user.role,
		Name:  user.name,
	}, nil
}

// VerifyAdmin checks that the given email belongs to an admin account
func (s *Service) VerifyAdmin(email string) error {
	user, ok := s.users[strings.ToLower(email)]
	if !ok || user.role != entities.RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}

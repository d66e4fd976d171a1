// Package auth checks logins against the credential file and resolves the
// matched id to a relational user. The two stores share ids but are never
// reconciled; a credential without a user row is reported as inconsistent
// data, not repaired.
package auth

import (
	"errors"
	"fmt"

	"healthlog/models"
	"healthlog/repository"
)

var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInconsistentData   = errors.New("usuario existe en CSV pero no en SQL (inconsistencia de datos)")
)

type Service struct {
	Creds  repository.CredentialStore
	Health repository.HealthRepository
}

func NewService(creds repository.CredentialStore, health repository.HealthRepository) *Service {
	return &Service{Creds: creds, Health: health}
}

// Login verifies the (id, password) pair against the credential file and, on
// a match, loads the user's relational row for role dispatch.
func (s *Service) Login(id, password string) (*models.User, error) {
	ok, err := s.Creds.Verify(id, password)
	if err != nil {
		return nil, fmt.Errorf("reading credential file: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Health.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInconsistentData
	}
	return user, nil
}

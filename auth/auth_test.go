package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthlog/models"
	"healthlog/repository"
)

type stubHealthRepo struct {
	users map[string]*models.User
	err   error
}

func (s *stubHealthRepo) CreateUser(u *models.User) error { return s.err }

func (s *stubHealthRepo) InsertDailyRecord(r *models.DailyRecord) error { return s.err }

func (s *stubHealthRepo) GetHealthHistory(string) ([]models.DailyRecord, error) {
	return nil, s.err
}

func (s *stubHealthRepo) GetUserByID(id string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func newService(t *testing.T, users map[string]*models.User) (*Service, repository.CredentialStore) {
	t.Helper()
	creds := repository.NewCSVCredentialStore(filepath.Join(t.TempDir(), "passwords.csv"))
	require.NoError(t, creds.Initialize())
	return NewService(creds, &stubHealthRepo{users: users}), creds
}

func TestLogin_Success(t *testing.T) {
	svc, creds := newService(t, map[string]*models.User{
		"2": {ID: "2", Name: "Gabi", Role: models.RoleStandard},
	})
	require.NoError(t, creds.Register("2", "secreto"))

	user, err := svc.Login("2", "secreto")

	require.NoError(t, err)
	assert.Equal(t, "Gabi", user.Name)
	assert.Equal(t, models.RoleStandard, user.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.Login("2", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InconsistentData(t *testing.T) {
	// Credential exists but there is no relational user row.
	svc, creds := newService(t, map[string]*models.User{})
	require.NoError(t, creds.Register("9", "pw"))

	_, err := svc.Login("9", "pw")

	assert.ErrorIs(t, err, ErrInconsistentData)
}

func TestLogin_RepoErrorPropagates(t *testing.T) {
	creds := repository.NewCSVCredentialStore(filepath.Join(t.TempDir(), "passwords.csv"))
	require.NoError(t, creds.Initialize())
	require.NoError(t, creds.Register("2", "pw"))

	svc := NewService(creds, &stubHealthRepo{err: errors.New("sql: down")})

	_, err := svc.Login("2", "pw")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrInconsistentData)
}

package service

import (
	"testing"
	"time"

	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*model.User{},
		byEmail: map[string]*model.User{},
	}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserRepo(), "test-secret", time.Hour, false)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestAuthService()

	user, err := s.Register("Dana@Example.com", "orbit-walrus-paper-42")
	require.NoError(t, err)

	// Email is normalized, password never stored in the clear
	assert.Equal(t, "dana@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "orbit-walrus-paper-42")

	got, err := s.Login("dana@example.com", "orbit-walrus-paper-42")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Login("dana@example.com", "not-the-password-at-all")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("nobody@example.com", "orbit-walrus-paper-42")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestAuthService()

	_, err := s.Register("dana@example.com", "orbit-walrus-paper-42")
	require.NoError(t, err)

	_, err = s.Register("dana@example.com", "another-fine-password-7")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	s := newTestAuthService()

	_, err := s.Register("not-an-email", "orbit-walrus-paper-42")
	assert.Error(t, err)

	_, err = s.Register("dana@example.com", "short")
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	s := newTestAuthService()

	user := &model.User{ID: "user-1", Email: "dana@example.com"}
	token, err := s.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := s.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "dana@example.com", claims["email"])
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	s := newTestAuthService()
	other := NewAuthService(newFakeUserRepo(), "different-secret", time.Hour, false)

	token, err := other.GenerateJWT(&model.User{ID: "user-1", Email: "x@example.com"})
	require.NoError(t, err)

	_, err = s.VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	s := newTestAuthService()

	_, err := s.VerifyJWT("not.a.token")
	assert.Error(t, err)
}

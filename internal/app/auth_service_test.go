package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weepify/internal/model"
	"weepify/internal/pkg/jwtutil"
)

type fakeUserStore struct {
	users  map[uint]model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

const authTestSecret = "auth-test-secret"

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserStore(), authTestSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestAuthService()

	registered, err := service.Register(RegisterInput{
		Username: "weeper",
		Email:    "Weeper@Example.com",
		Password: "salty-tears",
	})
	require.NoError(t, err)
	assert.Equal(t, "weeper", registered.User.Username)
	assert.Equal(t, "weeper@example.com", registered.User.Email)
	assert.NotEqual(t, "salty-tears", registered.User.PasswordHash)

	claims, err := jwtutil.ParseToken(authTestSecret, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "weeper", claims.Username)

	logged, err := service.Login(LoginInput{Username: "weeper", Password: "salty-tears"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)

	_, err = service.Login(LoginInput{Username: "weeper", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRegisterRejections(t *testing.T) {
	service := newTestAuthService()

	_, err := service.Register(RegisterInput{
		Username: "weeper",
		Email:    "weeper@example.com",
		Password: "salty-tears",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"blank username", RegisterInput{Email: "a@b.com", Password: "salty-tears"}, ErrInvalidInput},
		{"blank email", RegisterInput{Username: "x", Password: "salty-tears"}, ErrInvalidInput},
		{"short password", RegisterInput{Username: "x", Email: "a@b.com", Password: "short"}, ErrWeakPassword},
		{"duplicate username", RegisterInput{Username: "weeper", Email: "other@example.com", Password: "salty-tears"}, ErrUsernameExists},
		{"duplicate email", RegisterInput{Username: "other", Email: "WEEPER@example.com", Password: "salty-tears"}, ErrEmailExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := newTestAuthService()

	_, err := service.Login(LoginInput{Username: "nobody", Password: "salty-tears"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGetUserByID(t *testing.T) {
	service := newTestAuthService()

	registered, err := service.Register(RegisterInput{
		Username: "weeper",
		Email:    "weeper@example.com",
		Password: "salty-tears",
	})
	require.NoError(t, err)

	user, err := service.GetUserByID(registered.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "weeper", user.Username)

	_, err = service.GetUserByID(0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	missing, err := service.GetUserByID(registered.User.ID + 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

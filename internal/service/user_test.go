package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestUserService_Create(t *testing.T) {
	svc, repo := newUserService(t)
	chatID := int64(12345)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "driver.one" && u.Email == "Driver@example.com" && u.CreatedAt.Equal(testNow)
	})).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:       "  driver.one ",
		Email:          "Driver@EXAMPLE.com",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "driver.one", user.Username)
	assert.Equal(t, "Driver@example.com", user.Email)

	got, ok := user.TelegramChat()
	assert.True(t, ok)
	assert.Equal(t, chatID, got)
}

func TestUserService_Create_Invalid(t *testing.T) {
	zero := int64(0)

	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"empty username", domain.CreateUserInput{Username: "   "}},
		{"username with spaces", domain.CreateUserInput{Username: "two words"}},
		{"username too long", domain.CreateUserInput{Username: strings.Repeat("a", 151)}},
		{"bad email", domain.CreateUserInput{Username: "bob", Email: "not-an-email"}},
		{"display name email", domain.CreateUserInput{Username: "bob", Email: "Bob <bob@example.com>"}},
		{"zero chat id", domain.CreateUserInput{Username: "bob", TelegramChatID: &zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_RepoErrors(t *testing.T) {
	dbErr := errors.New("db error")

	for _, repoErr := range []error{dbErr, domain.ErrUsernameTaken} {
		svc, repo := newUserService(t)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

		_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

		assert.ErrorIs(t, err, repoErr)
	}
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	user, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error")).Once()

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.List(context.Background())
	assert.Error(t, err)
}

func TestUser_TelegramChat(t *testing.T) {
	var nilUser *domain.User
	_, ok := nilUser.TelegramChat()
	assert.False(t, ok)

	_, ok = (&domain.User{}).TelegramChat()
	assert.False(t, ok)
}

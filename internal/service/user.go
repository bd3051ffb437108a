package service

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxUsernameLen = 150

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type UserService struct {
	repo   ports.UserRepo
	now    func() time.Time
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, log logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

// Create registers a user. Usernames are letters, digits and @.+-_ only;
// the domain part of the e-mail address is lower-cased.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if input.TelegramChatID != nil && *input.TelegramChatID == 0 {
		return nil, fmt.Errorf("%w: telegram chat id must not be zero", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created",
		logger.String("user_id", user.ID),
		logger.String("username", user.Username),
	)

	return user, nil
}

func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	switch {
	case username == "":
		return "", fmt.Errorf("%w: username is required", domain.ErrValidation)
	case len(username) > maxUsernameLen:
		return "", fmt.Errorf("%w: username is longer than %d characters", domain.ErrValidation, maxUsernameLen)
	case !usernamePattern.MatchString(username):
		return "", fmt.Errorf("%w: username may contain only letters, digits and @.+-_", domain.ErrValidation)
	}
	return username, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", domain.ErrValidation, email)
	}

	local, host, _ := strings.Cut(email, "@")
	return local + "@" + strings.ToLower(host), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

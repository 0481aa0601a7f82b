package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres/repository"
)

const maxDisplayNameLen = 64

type UserService struct {
	repository UserRepository
	logger     *zap.Logger
}

func NewUserService(repository UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repository: repository, logger: logger}
}

// EnsureUser registers the user on first contact and returns the stored profile.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (*entities.User, error) {
	created, err := s.repository.Save(ctx, entities.NewUser(userID, chatID))
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("new user", zap.Int64("user_id", userID))
	}

	return s.Get(ctx, userID)
}

// Get returns the user's profile.
func (s *UserService) Get(ctx context.Context, userID int64) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetProfile stores the user's type and display name.
func (s *UserService) SetProfile(ctx context.Context, userID int64, userType, name string) error {
	t, ok := entities.ParseUserType(userType)
	if !ok {
		return fmt.Errorf("%q: %w", userType, ErrInvalidUserType)
	}

	name = strings.Join(strings.Fields(name), " ")
	if utf8.RuneCountInString(name) > maxDisplayNameLen {
		name = string([]rune(name)[:maxDisplayNameLen])
	}

	return s.update(ctx, userID, t, name)
}

// ClearProfile resets the user type and display name.
func (s *UserService) ClearProfile(ctx context.Context, userID int64) error {
	return s.update(ctx, userID, entities.UserTypeNone, "")
}

func (s *UserService) update(ctx context.Context, userID int64, t entities.UserType, name string) error {
	if err := s.repository.UpdateProfile(ctx, userID, t, name); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

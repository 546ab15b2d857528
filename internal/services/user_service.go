package services

import (
	"context"
	"errors"
	"fmt"

	"taxi-translator-backend/internal/auth"
	"taxi-translator-backend/internal/models"
	"taxi-translator-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidCredentials is deliberately identical for unknown email and
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be 'driver' or 'passenger'")
	ErrUnknownLanguage    = errors.New("invalid language")
	ErrNoUpdateFields     = errors.New("no fields to update")
)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Profile(ctx context.Context, id uint) (*models.User, *models.UserStats, error)
	UpdateProfile(ctx context.Context, id uint, changes models.UserUpdate) (*models.User, error)
	History(ctx context.Context, id uint, limit, offset int) ([]models.Message, int64, error)
	UpdateLanguage(ctx context.Context, id uint, pref string) error
}

type userService struct {
	users     repository.UserRepository
	languages repository.LanguageRepository
	messages  repository.MessageRepository
	logger    *logrus.Logger
}

func NewUserService(users repository.UserRepository, languages repository.LanguageRepository, messages repository.MessageRepository, logger *logrus.Logger) UserService {
	return &userService{
		users:     users,
		languages: languages,
		messages:  messages,
		logger:    logger,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Role != models.RoleDriver && input.Role != models.RolePassenger {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		LanguagePref: "en",
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"email": user.Email,
		"role":  user.Role,
	}).Info("New user registered")

	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.ComparePassword(password, user.PasswordHash) {
		s.logger.WithField("email", email).Warn("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	s.logger.WithField("email", email).Info("User logged in")
	return user, nil
}

func (s *userService) Profile(ctx context.Context, id uint) (*models.User, *models.UserStats, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.users.Stats(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return user, stats, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, changes models.UserUpdate) (*models.User, error) {
	if changes.Empty() {
		return nil, ErrNoUpdateFields
	}

	user, err := s.users.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", id).Info("User profile updated")
	return user, nil
}

func (s *userService) History(ctx context.Context, id uint, limit, offset int) ([]models.Message, int64, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, 0, err
	}

	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	history, err := s.messages.ListBySender(ctx, id, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.messages.CountBySender(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return history, total, nil
}

func (s *userService) UpdateLanguage(ctx context.Context, id uint, pref string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	language, err := s.languages.FindByCodeOrName(ctx, pref)
	if err != nil {
		return err
	}
	if language == nil {
		return ErrUnknownLanguage
	}

	if err := s.users.SetLanguagePref(ctx, id, pref); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":       id,
		"language_pref": pref,
	}).Info("User language preference updated")
	return nil
}

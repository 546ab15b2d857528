package services

import (
	"context"
	"fmt"

	"taxi-translator-backend/internal/auth"
	"taxi-translator-backend/internal/models"
	"taxi-translator-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type AdminService interface {
	Login(ctx context.Context, username, password string) (string, *models.Administrator, error)
	SystemStats(ctx context.Context) (*models.SystemStats, error)
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}

type adminService struct {
	admins   repository.AdminRepository
	messages repository.MessageRepository
	tokens   *auth.TokenManager
	logger   *logrus.Logger
}

func NewAdminService(admins repository.AdminRepository, messages repository.MessageRepository, tokens *auth.TokenManager, logger *logrus.Logger) AdminService {
	return &adminService{
		admins:   admins,
		messages: messages,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, *models.Administrator, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if admin == nil || !auth.ComparePassword(password, admin.PasswordHash) {
		s.logger.WithField("username", username).Warn("Failed admin login attempt")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, admin.Username, admin.PermissionsLevel)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.WithField("username", username).Info("Administrator logged in")
	return token, admin, nil
}

func (s *adminService) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	return s.messages.GlobalStats(ctx)
}

// EnsureDefaultAdmin bootstraps one administrator account from configuration
// when none with that username exists yet. No-op when credentials are unset.
func (s *adminService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}

	existing, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.Administrator{
		Username:         username,
		Email:            email,
		PasswordHash:     hash,
		PermissionsLevel: models.PermissionAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.WithField("username", username).Info("Default administrator created")
	return nil
}

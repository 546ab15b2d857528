package repository

import (
	"context"
	"errors"
	"time"

	"taxi-translator-backend/internal/database"
	"taxi-translator-backend/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Administrator) error
	FindByUsername(ctx context.Context, username string) (*models.Administrator, error)
}

type adminRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewAdminRepository(db *database.Database) AdminRepository {
	return &adminRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *adminRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Administrator) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var admin models.Administrator
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

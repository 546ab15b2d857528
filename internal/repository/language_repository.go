package repository

import (
	"context"
	"errors"
	"time"

	"taxi-translator-backend/internal/database"
	"taxi-translator-backend/internal/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	FindAll(ctx context.Context) ([]models.Language, error)
	FindByCodeOrName(ctx context.Context, codeOrName string) (*models.Language, error)
}

type languageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLanguageRepository(db *database.Database) LanguageRepository {
	return &languageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *languageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// FindAll returns the seeded language set ordered by display name.
func (r *languageRepository) FindAll(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.db.WithContext(ctx).Order("lang_name").Find(&languages).Error
	return languages, err
}

// FindByCodeOrName resolves a language by its short code or its display name.
// Returns (nil, nil) when neither matches.
func (r *languageRepository) FindByCodeOrName(ctx context.Context, codeOrName string) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.db.WithContext(ctx).
		Where("lang_code = ? OR lang_name = ?", codeOrName, codeOrName).
		First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

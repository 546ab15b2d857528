package repository

import (
	"context"
	"errors"
	"time"

	"taxi-translator-backend/internal/database"
	"taxi-translator-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, id uint, changes models.UserUpdate) (*models.User, error)
	SetLanguagePref(ctx context.Context, id uint, pref string) error
	Stats(ctx context.Context, id uint) (*models.UserStats, error)
}

type userRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies a partial change set against the fixed updatable column set
// and returns the reloaded row.
func (r *userRepository) Update(ctx context.Context, id uint, changes models.UserUpdate) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.findByID(ctx, id); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if changes.FullName != nil {
		values["full_name"] = *changes.FullName
	}
	if changes.Email != nil {
		values["email"] = *changes.Email
	}
	if changes.LanguagePref != nil {
		values["language_pref"] = *changes.LanguagePref
	}

	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", id).
		Updates(values).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return r.findByID(ctx, id)
}

func (r *userRepository) SetLanguagePref(ctx context.Context, id uint, pref string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", id).
		Update("language_pref", pref)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the sender's message log: total rows, distinct target
// languages and the most recent timestamp.
func (r *userRepository) Stats(ctx context.Context, id uint) (*models.UserStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type aggRow struct {
		TotalTranslations int64
		LanguagesUsed     int64
	}

	var row aggRow
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Select("COUNT(*) as total_translations, COUNT(DISTINCT target_lang) as languages_used").
		Where("sender_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{
		TotalTranslations: row.TotalTranslations,
		LanguagesUsed:     row.LanguagesUsed,
	}

	if row.TotalTranslations > 0 {
		var latest models.Message
		err := r.db.WithContext(ctx).
			Where("sender_id = ?", id).
			Order("timestamp DESC").
			First(&latest).Error
		if err != nil {
			return nil, err
		}
		stats.LastTranslation = &latest.Timestamp
	}

	return stats, nil
}

func (r *userRepository) findByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

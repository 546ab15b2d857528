package repository

import (
	"context"
	"time"

	"taxi-translator-backend/internal/database"
	"taxi-translator-backend/internal/models"
)

// SearchLimitMax bounds substring-search result counts.
const SearchLimitMax = 50

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListBySender(ctx context.Context, senderID uint, limit, offset int) ([]models.Message, error)
	CountBySender(ctx context.Context, senderID uint) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]models.Message, error)
	GlobalStats(ctx context.Context) (*models.SystemStats, error)
}

type messageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMessageRepository(db *database.Database) MessageRepository {
	return &messageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *messageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(message).Error
}

// ListBySender returns the sender's messages newest first.
func (r *messageRepository) ListBySender(ctx context.Context, senderID uint, limit, offset int) ([]models.Message, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) CountBySender(ctx context.Context, senderID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ?", senderID).
		Count(&count).Error
	return count, err
}

// Search matches the query as a substring of either the original or the
// translated text, newest first, bounded by limit.
func (r *messageRepository) Search(ctx context.Context, query string, limit int) ([]models.Message, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if limit < 1 || limit > SearchLimitMax {
		limit = SearchLimitMax
	}

	pattern := "%" + query + "%"
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("original_text LIKE ? OR translated_text LIKE ?", pattern, pattern).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// GlobalStats computes the system-wide aggregates: user counts by role,
// translation counts by target language, and overall totals.
func (r *messageRepository) GlobalStats(ctx context.Context) (*models.SystemStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	type roleRow struct {
		Role  string
		Count int64
	}
	var roleRows []roleRow
	if err := db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&roleRows).Error; err != nil {
		return nil, err
	}

	usersByRole := make(map[string]int64, len(roleRows))
	for _, row := range roleRows {
		usersByRole[row.Role] = row.Count
	}

	var langRows []models.TargetLangCount
	if err := db.Model(&models.Message{}).
		Select("target_lang, COUNT(*) as count").
		Group("target_lang").
		Order("count DESC").
		Scan(&langRows).Error; err != nil {
		return nil, err
	}

	var totals models.SystemTotals
	if err := db.Model(&models.User{}).Count(&totals.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Message{}).Count(&totals.TotalTranslations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Message{}).
		Distinct("target_lang").
		Count(&totals.LanguagesUsed).Error; err != nil {
		return nil, err
	}

	return &models.SystemStats{
		UsersByRole:      usersByRole,
		TranslationStats: langRows,
		Totals:           totals,
	}, nil
}

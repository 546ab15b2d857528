package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taxi-translator-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func seedMessages(t *testing.T, repo MessageRepository, senderID uint, n int) []models.Message {
	t.Helper()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	out := make([]models.Message, 0, n)
	for i := 0; i < n; i++ {
		msg := models.Message{
			SenderID:       &senderID,
			OriginalText:   fmt.Sprintf("phrase %d", i),
			TranslatedText: fmt.Sprintf("umusho %d", i),
			SourceLang:     "en",
			TargetLang:     "zu",
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), &msg))
		out = append(out, msg)
	}
	return out
}

func TestMessageRepository_ListBySender_NewestFirst(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessages(t, repo, 1, 5)

	got, err := repo.ListBySender(ctx, 1, 10, 0)
	req.NoError(err)
	req.Len(got, 5)
	req.Equal("phrase 4", got[0].OriginalText)
	req.Equal("phrase 0", got[4].OriginalText)
}

func TestMessageRepository_ListBySender_PaginationNoOverlapNoGap(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessages(t, repo, 1, 5)

	page1, err := repo.ListBySender(ctx, 1, 2, 0)
	req.NoError(err)
	page2, err := repo.ListBySender(ctx, 1, 2, 2)
	req.NoError(err)
	page3, err := repo.ListBySender(ctx, 1, 2, 4)
	req.NoError(err)

	req.Len(page1, 2)
	req.Len(page2, 2)
	req.Len(page3, 1)

	seen := make(map[uint]bool)
	for _, page := range [][]models.Message{page1, page2, page3} {
		for _, m := range page {
			req.False(seen[m.ID], "message %d returned twice", m.ID)
			seen[m.ID] = true
		}
	}
	req.Len(seen, 5)

	count, err := repo.CountBySender(ctx, 1)
	req.NoError(err)
	req.EqualValues(5, count)
}

func TestMessageRepository_ListBySender_OtherSenderExcluded(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessages(t, repo, 1, 3)
	seedMessages(t, repo, 2, 2)

	got, err := repo.ListBySender(ctx, 1, 10, 0)
	req.NoError(err)
	req.Len(got, 3)

	count, err := repo.CountBySender(ctx, 2)
	req.NoError(err)
	req.EqualValues(2, count)
}

func TestMessageRepository_Search_MatchesEitherTextColumn(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	sender := uint(1)
	req.NoError(repo.Create(ctx, &models.Message{
		SenderID: &sender, OriginalText: "where is the taxi rank",
		TranslatedText: "likuphi irenki yamatekisi", SourceLang: "en", TargetLang: "zu",
	}))
	req.NoError(repo.Create(ctx, &models.Message{
		SenderID: &sender, OriginalText: "good morning",
		TranslatedText: "sawubona ekuseni", SourceLang: "en", TargetLang: "zu",
	}))

	byOriginal, err := repo.Search(ctx, "taxi rank", 10)
	req.NoError(err)
	req.Len(byOriginal, 1)

	byTranslated, err := repo.Search(ctx, "ekuseni", 10)
	req.NoError(err)
	req.Len(byTranslated, 1)

	none, err := repo.Search(ctx, "aeroplane", 10)
	req.NoError(err)
	req.Empty(none)
}

func TestMessageRepository_Search_ClampsLimit(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessages(t, repo, 1, 3)

	got, err := repo.Search(ctx, "phrase", 0)
	req.NoError(err)
	req.Len(got, 3)

	got, err = repo.Search(ctx, "phrase", 2)
	req.NoError(err)
	req.Len(got, 2)
}

func TestMessageRepository_GlobalStats(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	driver := newTestUser("driver@taxi.com")
	req.NoError(users.Create(ctx, driver))
	passenger := newTestUser("passenger@taxi.com")
	passenger.Role = models.RolePassenger
	req.NoError(users.Create(ctx, passenger))

	for _, target := range []string{"zu", "zu", "zu", "xh"} {
		req.NoError(messages.Create(ctx, &models.Message{
			SenderID:       &driver.ID,
			OriginalText:   "hello",
			TranslatedText: "Sawubona",
			SourceLang:     "en",
			TargetLang:     target,
		}))
	}

	stats, err := messages.GlobalStats(ctx)
	req.NoError(err)

	req.EqualValues(1, stats.UsersByRole[models.RoleDriver])
	req.EqualValues(1, stats.UsersByRole[models.RolePassenger])

	req.Len(stats.TranslationStats, 2)
	req.Equal("zu", stats.TranslationStats[0].TargetLang)
	req.EqualValues(3, stats.TranslationStats[0].Count)
	req.Equal("xh", stats.TranslationStats[1].TargetLang)
	req.EqualValues(1, stats.TranslationStats[1].Count)

	req.EqualValues(2, stats.Totals.TotalUsers)
	req.EqualValues(4, stats.Totals.TotalTranslations)
	req.EqualValues(2, stats.Totals.LanguagesUsed)
}

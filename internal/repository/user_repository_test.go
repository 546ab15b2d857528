package repository

import (
	"context"
	"testing"
	"time"

	"taxi-translator-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *models.User {
	return &models.User{
		FullName:     "Thabo Mokoena",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         models.RoleDriver,
		LanguagePref: "en",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("thabo@taxi.com")
	req.NoError(repo.Create(ctx, user))
	req.NotZero(user.ID)

	byEmail, err := repo.FindByEmail(ctx, "thabo@taxi.com")
	req.NoError(err)
	req.NotNil(byEmail)
	req.Equal(user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	req.NoError(err)
	req.Equal("Thabo Mokoena", byID.FullName)
	req.Equal(models.RoleDriver, byID.Role)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	req.NoError(repo.Create(ctx, newTestUser("dup@taxi.com")))

	err := repo.Create(ctx, newTestUser("dup@taxi.com"))
	req.ErrorIs(err, ErrDuplicateEmail)
}

func TestUserRepository_FindByEmail_MissReturnsNil(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail(context.Background(), "ghost@taxi.com")
	req.NoError(err)
	req.Nil(user)
}

func TestUserRepository_FindByID_Missing(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	req.ErrorIs(err, ErrNotFound)
}

func TestUserRepository_Update_PartialPreservesOtherFields(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("update@taxi.com")
	req.NoError(repo.Create(ctx, user))

	newName := "Sipho Dlamini"
	updated, err := repo.Update(ctx, user.ID, models.UserUpdate{FullName: &newName})
	req.NoError(err)
	req.Equal("Sipho Dlamini", updated.FullName)
	req.Equal("update@taxi.com", updated.Email)
	req.Equal("en", updated.LanguagePref)
	req.Equal(models.RoleDriver, updated.Role)
}

func TestUserRepository_Update_Missing(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)

	name := "Nobody"
	_, err := repo.Update(context.Background(), 9999, models.UserUpdate{FullName: &name})
	req.ErrorIs(err, ErrNotFound)
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	req.NoError(repo.Create(ctx, newTestUser("taken@taxi.com")))
	other := newTestUser("other@taxi.com")
	req.NoError(repo.Create(ctx, other))

	taken := "taken@taxi.com"
	_, err := repo.Update(ctx, other.ID, models.UserUpdate{Email: &taken})
	req.ErrorIs(err, ErrDuplicateEmail)
}

func TestUserRepository_SetLanguagePref(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("pref@taxi.com")
	req.NoError(repo.Create(ctx, user))

	req.NoError(repo.SetLanguagePref(ctx, user.ID, "zu"))

	reloaded, err := repo.FindByID(ctx, user.ID)
	req.NoError(err)
	req.Equal("zu", reloaded.LanguagePref)

	req.ErrorIs(repo.SetLanguagePref(ctx, 9999, "zu"), ErrNotFound)
}

func TestUserRepository_Stats(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	user := newTestUser("stats@taxi.com")
	req.NoError(users.Create(ctx, user))

	empty, err := users.Stats(ctx, user.ID)
	req.NoError(err)
	req.Zero(empty.TotalTranslations)
	req.Zero(empty.LanguagesUsed)
	req.Nil(empty.LastTranslation)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, target := range []string{"zu", "zu", "xh"} {
		req.NoError(messages.Create(ctx, &models.Message{
			SenderID:       &user.ID,
			OriginalText:   "hello",
			TranslatedText: "Sawubona",
			SourceLang:     "en",
			TargetLang:     target,
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	stats, err := users.Stats(ctx, user.ID)
	req.NoError(err)
	req.EqualValues(3, stats.TotalTranslations)
	req.EqualValues(2, stats.LanguagesUsed)
	req.NotNil(stats.LastTranslation)
	req.True(stats.LastTranslation.Equal(base.Add(2 * time.Minute)))
}

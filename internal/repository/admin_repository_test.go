package repository

import (
	"context"
	"testing"

	"taxi-translator-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAdminRepository_CreateAndFind(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := &models.Administrator{
		Username:         "ops",
		Email:            "ops@taxi.com",
		PasswordHash:     "$2a$10$notarealhashnotarealhashnotarealhash",
		PermissionsLevel: models.PermissionAdmin,
	}
	req.NoError(repo.Create(ctx, admin))
	req.NotZero(admin.ID)

	found, err := repo.FindByUsername(ctx, "ops")
	req.NoError(err)
	req.NotNil(found)
	req.Equal(admin.ID, found.ID)
	req.Equal(models.PermissionAdmin, found.PermissionsLevel)

	missing, err := repo.FindByUsername(ctx, "nobody")
	req.NoError(err)
	req.Nil(missing)
}

func TestAdminRepository_Create_DuplicateUsername(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	first := &models.Administrator{
		Username:         "ops",
		Email:            "ops@taxi.com",
		PasswordHash:     "hash",
		PermissionsLevel: models.PermissionBasic,
	}
	req.NoError(repo.Create(ctx, first))

	second := &models.Administrator{
		Username:         "ops",
		Email:            "other@taxi.com",
		PasswordHash:     "hash",
		PermissionsLevel: models.PermissionBasic,
	}
	req.ErrorIs(repo.Create(ctx, second), ErrDuplicateUsername)
}

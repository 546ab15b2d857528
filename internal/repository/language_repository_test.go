package repository

import (
	"context"
	"testing"

	"taxi-translator-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestLanguageRepository_FindAll_SeededSet(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewLanguageRepository(db)

	languages, err := repo.FindAll(context.Background())
	req.NoError(err)
	req.Len(languages, len(models.SeedLanguages()))

	codes := make(map[string]string, len(languages))
	for _, l := range languages {
		codes[l.Code] = l.Name
	}
	req.Equal("isiZulu", codes["zu"])
	req.Equal("English", codes["en"])
	req.Equal("Tshivenda", codes["ve"])

	// Ordered by display name.
	for i := 1; i < len(languages); i++ {
		req.LessOrEqual(languages[i-1].Name, languages[i].Name)
	}
}

func TestLanguageRepository_FindByCodeOrName(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewLanguageRepository(db)
	ctx := context.Background()

	byCode, err := repo.FindByCodeOrName(ctx, "zu")
	req.NoError(err)
	req.NotNil(byCode)
	req.Equal("isiZulu", byCode.Name)

	byName, err := repo.FindByCodeOrName(ctx, "Afrikaans")
	req.NoError(err)
	req.NotNil(byName)
	req.Equal("af", byName.Code)

	missing, err := repo.FindByCodeOrName(ctx, "klingon")
	req.NoError(err)
	req.Nil(missing)
}

package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"taxi-translator-backend/internal/config"
	"taxi-translator-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

var testDBSeq atomic.Int64

// newTestDB opens a private in-memory store, migrated and seeded the same
// way the real connection is. Each call gets its own database.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	cfg := config.DatabaseConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
	}

	db, err := database.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

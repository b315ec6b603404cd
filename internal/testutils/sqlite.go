package testutils

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
)

// CreateTestSQLiteDB opens a migrated catalog database in a temp dir.
// The database is closed when the test ends.
func CreateTestSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := catalog.OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err, "failed to open sqlite catalog")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/focup/internal/app"
	"github.com/thenoetrevino/focup/internal/testutil"
)

// SetupCLITest creates a temporary DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithGracePeriod(0))
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return db, appInstance
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title string, completed bool) int64 {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, completed)
}

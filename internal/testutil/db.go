package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/focup/internal/database"
)

// SetupTestDB creates a file-backed database with the full schema in a
// per-test temporary directory. It is closed automatically.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return OpenTestDB(t, filepath.Join(t.TempDir(), "focup-test.db"))
}

// OpenTestDB opens (or reopens) the database at path. It is closed automatically.
func OpenTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string, completed bool) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, isCompleted) VALUES (?, ?)", title, completed)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read task id: %v", err)
	}
	return id
}

// CountTasks returns the number of rows in the tasks table
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// openTestDB creates a migrated SQLite database in a temp directory
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	// Migrations must have created every schema table
	tables := []string{"words", "groups", "words_groups", "study_activities", "study_sessions", "word_review_items"}

	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Running migrations again must be a no-op
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Errorf("Second migration run failed: %v", err)
	}
}

// TestForeignKeysEnabled verifies that SQLite foreign key enforcement is
// switched on at connection setup. It is off by default and the schema's
// referential constraints do not hold without it.
func TestForeignKeysEnabled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Error("Foreign key enforcement is not enabled")
	}

	// An orphan session must be rejected
	_, err := db.Exec("INSERT INTO study_sessions (group_id, study_activity_id) VALUES (999, 999)")
	if err == nil {
		t.Error("Expected foreign key violation inserting orphan session, got nil")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("IsConstraintViolation(%v) = false, want true", err)
	}
}

// TestForeignKeysOnEveryPoolConnection verifies that foreign key
// enforcement holds on every connection the pool opens, not just the
// first. The setting travels in the DSN; with more than one open
// connection, anything applied via a single Exec would be missing from
// the rest of the pool.
func TestForeignKeysOnEveryPoolConnection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	// Pin the first connection so the pool has to open a fresh one
	first, err := db.DB.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to acquire first connection: %v", err)
	}
	defer first.Close()

	second, err := db.DB.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to acquire second connection: %v", err)
	}
	defer second.Close()

	var enabled int
	if err := second.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Error("Foreign key enforcement is not enabled on a second pool connection")
	}

	_, err = second.ExecContext(ctx, "INSERT INTO study_sessions (group_id, study_activity_id) VALUES (999, 999)")
	if err == nil {
		t.Error("Expected foreign key violation inserting orphan session on second connection, got nil")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("IsConstraintViolation(%v) = false, want true", err)
	}
}

// TestWithTx tests the transaction helper's commit and rollback paths
func TestWithTx(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	// Successful function commits
	err := db.WithTx(func(tx *Tx) error {
		_, err := tx.Exec("INSERT INTO groups (name) VALUES (?)", "committed")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM groups WHERE name = ?", "committed").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 group after commit, got %d", count)
	}

	// Returned error rolls back
	boom := errors.New("boom")
	err = db.WithTx(func(tx *Tx) error {
		if _, err := tx.Exec("INSERT INTO groups (name) VALUES (?)", "rolled back"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx error = %v, want %v", err, boom)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM groups WHERE name = ?", "rolled back").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 groups after rollback, got %d", count)
	}
}

// TestExecReturningID tests ID generation through the dialect layer
func TestExecReturningID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	first, err := db.ExecReturningID("INSERT INTO groups (name) VALUES (?)", "first")
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}
	if first == 0 {
		t.Error("Expected non-zero id")
	}

	second, err := db.ExecReturningID("INSERT INTO groups (name) VALUES (?)", "second")
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}
	if second <= first {
		t.Errorf("Expected id %d > %d", second, first)
	}

	// The same helper works inside a transaction
	err = db.WithTx(func(tx *Tx) error {
		id, err := tx.ExecReturningID("INSERT INTO groups (name) VALUES (?)", "third")
		if err != nil {
			return err
		}
		if id <= second {
			t.Errorf("Expected transactional id %d > %d", id, second)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
}

// TestUpdatedAtTrigger verifies the trigger refreshing updated_at fires on
// study activity updates
func TestUpdatedAtTrigger(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	// Insert with a stale updated_at; only UPDATE fires the trigger
	id, err := db.ExecReturningID(`
		INSERT INTO study_activities (name, description, launch_url, updated_at)
		VALUES (?, ?, ?, '2000-01-01 00:00:00')
	`, "Flashcards", "Review words", "http://localhost/flashcards")
	if err != nil {
		t.Fatalf("Failed to insert activity: %v", err)
	}

	_, err = db.Exec("UPDATE study_activities SET name = ? WHERE id = ?", "Flashcards v2", id)
	if err != nil {
		t.Fatalf("Failed to update activity: %v", err)
	}

	var updatedAt string
	if err := db.QueryRow("SELECT updated_at FROM study_activities WHERE id = ?", id).Scan(&updatedAt); err != nil {
		t.Fatalf("Failed to read updated_at: %v", err)
	}
	if updatedAt == "2000-01-01 00:00:00" {
		t.Error("updated_at was not refreshed by the trigger")
	}
}

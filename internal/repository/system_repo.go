package repository

import (
	"fmt"
	"time"

	"langportal/internal/database"
)

// requiredTables lists every table the schema defines, in foreign-key
// dependency order: children first, parents last. Deletes follow this
// order so constraints are never violated mid-reset.
var requiredTables = []string{
	"word_review_items",
	"study_sessions",
	"words_groups",
	"words",
	"groups",
	"study_activities",
}

// SystemRepository handles maintenance operations: resets, vacuum, health.
// It holds the concrete *database.DB because resets need transactions.
type SystemRepository struct {
	db *database.DB
}

// NewSystemRepository creates a new system repository
func NewSystemRepository(db *database.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// ResetHistory deletes all review items and sessions in one transaction,
// leaving vocabulary, groups and activities untouched. Any failure rolls
// back; partial deletion is never left visible.
func (r *SystemRepository) ResetHistory() error {
	err := r.db.WithTx(func(tx *database.Tx) error {
		for _, table := range []string{"word_review_items", "study_sessions"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}

// FullReset deletes every row from all six tables in dependency order, in
// one transaction.
func (r *SystemRepository) FullReset() error {
	err := r.db.WithTx(func(tx *database.Tx) error {
		for _, table := range requiredTables {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("full reset: %w", err)
	}
	return nil
}

// Vacuum reclaims storage space. Only SQLite supports the command; for
// other dialects this is a no-op.
func (r *SystemRepository) Vacuum() (bool, error) {
	if !r.db.Dialect.SupportsVacuum() {
		return false, nil
	}
	if _, err := r.db.Exec("VACUUM"); err != nil {
		return false, fmt.Errorf("vacuum: %w", err)
	}
	return true, nil
}

// Health describes the storage layer's current state
type Health struct {
	Status             string    `json:"status"`
	Connected          bool      `json:"connected"`
	ForeignKeysEnabled bool      `json:"foreign_keys_enabled"`
	MissingTables      []string  `json:"missing_tables"`
	Timestamp          time.Time `json:"timestamp"`
}

// CheckHealth verifies connectivity, foreign-key enforcement and the
// presence of every required table.
func (r *SystemRepository) CheckHealth() (*Health, error) {
	h := &Health{
		Status:        "healthy",
		MissingTables: []string{},
		Timestamp:     time.Now().UTC(),
	}

	var one int
	if err := r.db.QueryRow("SELECT 1").Scan(&one); err != nil {
		h.Status = "unhealthy"
		return h, fmt.Errorf("health: connectivity: %w", err)
	}
	h.Connected = true

	fk, err := r.foreignKeysEnabled()
	if err != nil {
		h.Status = "unhealthy"
		return h, err
	}
	h.ForeignKeysEnabled = fk

	for _, table := range requiredTables {
		var n int
		if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			h.MissingTables = append(h.MissingTables, table)
		}
	}

	if !h.ForeignKeysEnabled || len(h.MissingTables) > 0 {
		h.Status = "unhealthy"
	}

	return h, nil
}

func (r *SystemRepository) foreignKeysEnabled() (bool, error) {
	switch r.db.Dialect.(type) {
	case *database.SQLiteDialect:
		var enabled int
		if err := r.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
			return false, fmt.Errorf("health: foreign_keys pragma: %w", err)
		}
		return enabled == 1, nil
	case *database.MySQLDialect:
		var enabled int
		if err := r.db.QueryRow("SELECT @@FOREIGN_KEY_CHECKS").Scan(&enabled); err != nil {
			return false, fmt.Errorf("health: foreign_key_checks: %w", err)
		}
		return enabled == 1, nil
	default:
		// PostgreSQL enforces foreign keys unconditionally
		return true, nil
	}
}

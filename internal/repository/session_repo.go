package repository

import (
	"database/sql"
	"fmt"

	"langportal/internal/database"
	"langportal/internal/models"
	"langportal/internal/validation"
)

// SessionRepository handles study session and word review database operations
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new study session for a group using an activity. Both
// parents are checked before the insert so a miss surfaces as ErrNotFound
// naming the missing entity rather than a bare constraint failure.
func (r *SessionRepository) Create(groupID, activityID int64) (*models.SessionWithDetails, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM groups WHERE id = ?", groupID).Scan(&n); err != nil {
		return nil, fmt.Errorf("create session: check group %d: %w", groupID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("group %d: %w", groupID, ErrNotFound)
	}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM study_activities WHERE id = ?", activityID).Scan(&n); err != nil {
		return nil, fmt.Errorf("create session: check activity %d: %w", activityID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("study activity %d: %w", activityID, ErrNotFound)
	}

	id, err := r.db.ExecReturningID(`
		INSERT INTO study_sessions (group_id, study_activity_id)
		VALUES (?, ?)
	`, groupID, activityID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return r.Get(id)
}

// Get returns a session joined with its group and activity names, or
// ErrNotFound.
func (r *SessionRepository) Get(id int64) (*models.SessionWithDetails, error) {
	var s models.SessionWithDetails
	err := r.db.QueryRow(`
		SELECT ss.id, ss.group_id, g.name, sa.id, sa.name, ss.created_at,
		       (SELECT COUNT(*) FROM word_review_items wri WHERE wri.study_session_id = ss.id)
		FROM study_sessions ss
		JOIN groups g ON g.id = ss.group_id
		JOIN study_activities sa ON sa.id = ss.study_activity_id
		WHERE ss.id = ?
	`, id).Scan(
		&s.ID,
		&s.GroupID,
		&s.GroupName,
		&s.ActivityID,
		&s.ActivityName,
		&s.CreatedAt,
		&s.ReviewItemsCount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get study session %d: %w", id, err)
	}
	return &s, nil
}

// List returns one page of sessions with joined names and per-session
// review counts, newest first, optionally filtered to one group, plus the
// matching total.
func (r *SessionRepository) List(page validation.Page, groupID *int64) ([]models.SessionWithDetails, int, error) {
	query := `
		SELECT ss.id, ss.group_id, g.name, sa.id, sa.name, ss.created_at,
		       COUNT(wri.id) as review_items_count
		FROM study_sessions ss
		JOIN groups g ON g.id = ss.group_id
		JOIN study_activities sa ON sa.id = ss.study_activity_id
		LEFT JOIN word_review_items wri ON wri.study_session_id = ss.id
	`
	countQuery := "SELECT COUNT(*) FROM study_sessions"
	args := []interface{}{}
	countArgs := []interface{}{}

	if groupID != nil {
		query += " WHERE ss.group_id = ?"
		countQuery += " WHERE group_id = ?"
		args = append(args, *groupID)
		countArgs = append(countArgs, *groupID)
	}

	query += `
		GROUP BY ss.id, ss.group_id, g.name, sa.id, sa.name, ss.created_at
		ORDER BY ss.created_at DESC, ss.id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.SessionWithDetails{}
	for rows.Next() {
		var s models.SessionWithDetails
		err := rows.Scan(&s.ID, &s.GroupID, &s.GroupName, &s.ActivityID, &s.ActivityName, &s.CreatedAt, &s.ReviewItemsCount)
		if err != nil {
			return nil, 0, fmt.Errorf("list sessions: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	var total int
	if err := r.db.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	return sessions, total, nil
}

// ListForActivity returns one page of sessions that used the given
// activity, with per-session review outcome counts, plus the matching
// total. The caller checks activity existence first.
func (r *SessionRepository) ListForActivity(activityID int64, page validation.Page) ([]models.ActivitySession, int, error) {
	rows, err := r.db.Query(`
		SELECT ss.id, ss.group_id, g.name, ss.created_at,
		       COUNT(wri.id) as review_count,
		       COALESCE(SUM(CASE WHEN wri.correct THEN 1 ELSE 0 END), 0) as correct_count
		FROM study_sessions ss
		JOIN groups g ON g.id = ss.group_id
		LEFT JOIN word_review_items wri ON wri.study_session_id = ss.id
		WHERE ss.study_activity_id = ?
		GROUP BY ss.id, ss.group_id, g.name, ss.created_at
		ORDER BY ss.created_at DESC, ss.id DESC
		LIMIT ? OFFSET ?
	`, activityID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity %d sessions: %w", activityID, err)
	}
	defer rows.Close()

	sessions := []models.ActivitySession{}
	for rows.Next() {
		var s models.ActivitySession
		err := rows.Scan(&s.ID, &s.GroupID, &s.GroupName, &s.CreatedAt, &s.ReviewCount, &s.CorrectCount)
		if err != nil {
			return nil, 0, fmt.Errorf("list activity %d sessions: %w", activityID, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list activity %d sessions: %w", activityID, err)
	}

	var total int
	err = r.db.QueryRow(
		"SELECT COUNT(*) FROM study_sessions WHERE study_activity_id = ?", activityID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count activity %d sessions: %w", activityID, err)
	}

	return sessions, total, nil
}

// RecordReview appends one review outcome to a session. The session must
// exist and the word must belong to the session's group; a review for an
// unrelated word is rejected, never silently inserted. Review rows are
// append-only.
func (r *SessionRepository) RecordReview(sessionID, wordID int64, correct bool) (*models.WordReviewItem, error) {
	var groupID int64
	err := r.db.QueryRow("SELECT group_id FROM study_sessions WHERE id = ?", sessionID).Scan(&groupID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study session %d: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("record review: check session %d: %w", sessionID, err)
	}

	var n int
	err = r.db.QueryRow(`
		SELECT COUNT(*)
		FROM words w
		JOIN words_groups wg ON w.id = wg.word_id
		WHERE w.id = ? AND wg.group_id = ?
	`, wordID, groupID).Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("record review: check word %d: %w", wordID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("word %d in session %d group: %w", wordID, sessionID, ErrNotFound)
	}

	id, err := r.db.ExecReturningID(`
		INSERT INTO word_review_items (word_id, study_session_id, correct)
		VALUES (?, ?, ?)
	`, wordID, sessionID, correct)
	if err != nil {
		return nil, fmt.Errorf("record review: %w", err)
	}

	var item models.WordReviewItem
	err = r.db.QueryRow(`
		SELECT id, word_id, study_session_id, correct, created_at
		FROM word_review_items
		WHERE id = ?
	`, id).Scan(&item.ID, &item.WordID, &item.StudySessionID, &item.Correct, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record review: read back %d: %w", id, err)
	}

	return &item, nil
}

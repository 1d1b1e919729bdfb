package repository

import (
	"database/sql"
	"fmt"

	"langportal/internal/database"
	"langportal/internal/models"
	"langportal/internal/validation"
)

// GroupRepository handles word group database operations
type GroupRepository struct {
	db database.DBTX
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db database.DBTX) *GroupRepository {
	return &GroupRepository{db: db}
}

// List returns one page of groups with their distinct word counts, ordered
// by name, plus the total group count.
func (r *GroupRepository) List(page validation.Page) ([]models.GroupWithCount, int, error) {
	rows, err := r.db.Query(`
		SELECT g.id, g.name, COUNT(DISTINCT wg.word_id) as word_count
		FROM groups g
		LEFT JOIN words_groups wg ON g.id = wg.group_id
		GROUP BY g.id, g.name
		ORDER BY g.name, g.id
		LIMIT ? OFFSET ?
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []models.GroupWithCount{}
	for rows.Next() {
		var g models.GroupWithCount
		if err := rows.Scan(&g.ID, &g.Name, &g.WordCount); err != nil {
			return nil, 0, fmt.Errorf("list groups: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list groups: %w", err)
	}

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM groups").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count groups: %w", err)
	}

	return groups, total, nil
}

// Get returns a single group or ErrNotFound
func (r *GroupRepository) Get(id int64) (*models.Group, error) {
	var g models.Group
	err := r.db.QueryRow("SELECT id, name FROM groups WHERE id = ?", id).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get group %d: %w", id, err)
	}
	return &g, nil
}

// Exists reports whether a group with the given id exists
func (r *GroupRepository) Exists(id int64) (bool, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM groups WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check group %d: %w", id, err)
	}
	return n > 0, nil
}

// Create inserts a new group and returns it
func (r *GroupRepository) Create(name string) (*models.Group, error) {
	id, err := r.db.ExecReturningID("INSERT INTO groups (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return &models.Group{ID: id, Name: name}, nil
}

// GetByName returns the group with the given name, or ErrNotFound. Names
// are not unique; the lowest id wins.
func (r *GroupRepository) GetByName(name string) (*models.Group, error) {
	var g models.Group
	err := r.db.QueryRow("SELECT id, name FROM groups WHERE name = ? ORDER BY id LIMIT 1", name).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get group %q: %w", name, err)
	}
	return &g, nil
}

// ListWords returns one page of the group's words with review statistics,
// plus the group's distinct word count. The caller is expected to have
// checked that the group exists; an unknown group yields an empty page.
// Review statistics are aggregated in a subquery so duplicate group links
// cannot inflate the counts.
func (r *GroupRepository) ListWords(groupID int64, page validation.Page, sort validation.Sort) ([]models.WordWithStats, int, error) {
	query := fmt.Sprintf(`
		SELECT w.id, w.kanji, w.romaji, w.english, w.parts,
		       COALESCE(r.times_reviewed, 0) as times_reviewed,
		       COALESCE(r.times_correct, 0) as times_correct
		FROM words w
		JOIN (SELECT DISTINCT word_id FROM words_groups WHERE group_id = ?) wg
		  ON wg.word_id = w.id
		LEFT JOIN (
			SELECT word_id,
			       COUNT(DISTINCT study_session_id) as times_reviewed,
			       SUM(CASE WHEN correct THEN 1 ELSE 0 END) as times_correct
			FROM word_review_items
			GROUP BY word_id
		) r ON r.word_id = w.id
		ORDER BY w.%s %s, w.id
		LIMIT ? OFFSET ?
	`, sort.Column, sort.Direction())

	rows, err := r.db.Query(query, groupID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list group %d words: %w", groupID, err)
	}
	defer rows.Close()

	words, err := scanWordsWithStats(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list group %d words: %w", groupID, err)
	}

	var total int
	err = r.db.QueryRow(
		"SELECT COUNT(DISTINCT word_id) FROM words_groups WHERE group_id = ?", groupID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count group %d words: %w", groupID, err)
	}

	return words, total, nil
}

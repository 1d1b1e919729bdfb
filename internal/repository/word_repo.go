package repository

import (
	"database/sql"
	"fmt"

	"langportal/internal/database"
	"langportal/internal/models"
	"langportal/internal/validation"
)

// WordRepository handles vocabulary database operations
type WordRepository struct {
	db database.DBTX
}

// NewWordRepository creates a new word repository
func NewWordRepository(db database.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// reviewAggregate joins each word with its recomputed review statistics.
// times_reviewed counts distinct sessions, not review rows; two reviews of
// the same word in one session count once.
const reviewAggregate = `
	SELECT w.id, w.kanji, w.romaji, w.english, w.parts,
	       COUNT(DISTINCT wri.study_session_id) as times_reviewed,
	       COALESCE(SUM(CASE WHEN wri.correct THEN 1 ELSE 0 END), 0) as times_correct
	FROM words w
	LEFT JOIN word_review_items wri ON w.id = wri.word_id
`

// List returns one page of words with review statistics, plus the total
// word count for pagination metadata. The sort column comes from the
// allow-list in internal/validation, never from raw client input.
func (r *WordRepository) List(page validation.Page, sort validation.Sort) ([]models.WordWithStats, int, error) {
	// Trailing id keeps pages disjoint when sort values collide
	query := reviewAggregate + fmt.Sprintf(`
		GROUP BY w.id
		ORDER BY w.%s %s, w.id
		LIMIT ? OFFSET ?
	`, sort.Column, sort.Direction())

	rows, err := r.db.Query(query, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words, err := scanWordsWithStats(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	return words, total, nil
}

// Get returns one word with its review statistics and the groups it
// belongs to, or ErrNotFound.
func (r *WordRepository) Get(id int64) (*models.WordDetail, error) {
	query := reviewAggregate + `
		WHERE w.id = ?
		GROUP BY w.id
	`

	var detail models.WordDetail
	var parts []byte
	err := r.db.QueryRow(query, id).Scan(
		&detail.ID,
		&detail.Kanji,
		&detail.Romaji,
		&detail.English,
		&parts,
		&detail.TimesReviewed,
		&detail.TimesCorrect,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("word %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get word %d: %w", id, err)
	}
	detail.Parts = parts

	groups, err := r.groupsForWord(id)
	if err != nil {
		return nil, fmt.Errorf("get word %d groups: %w", id, err)
	}
	detail.Groups = groups

	return &detail, nil
}

func (r *WordRepository) groupsForWord(wordID int64) ([]models.Group, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT g.id, g.name
		FROM groups g
		JOIN words_groups wg ON g.id = wg.group_id
		WHERE wg.word_id = ?
		ORDER BY g.name
	`, wordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Create inserts a new vocabulary word and returns its id. Used by the
// seeder, the importer and backup restore; words are never created by
// normal API traffic.
func (r *WordRepository) Create(kanji, romaji, english string, parts []byte) (int64, error) {
	if len(parts) == 0 {
		parts = []byte("[]")
	}
	id, err := r.db.ExecReturningID(`
		INSERT INTO words (kanji, romaji, english, parts)
		VALUES (?, ?, ?, ?)
	`, kanji, romaji, english, string(parts))
	if err != nil {
		return 0, fmt.Errorf("create word: %w", err)
	}
	return id, nil
}

// AddToGroup links a word to a group. The schema does not enforce pair
// uniqueness; callers dedup when that matters.
func (r *WordRepository) AddToGroup(wordID, groupID int64) error {
	_, err := r.db.Exec(`
		INSERT INTO words_groups (word_id, group_id)
		VALUES (?, ?)
	`, wordID, groupID)
	if err != nil {
		return fmt.Errorf("link word %d to group %d: %w", wordID, groupID, err)
	}
	return nil
}

package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"langportal/internal/database"
	"langportal/internal/models"
)

// BackupVersion tags exported documents so future schema changes can
// detect old backups
const BackupVersion = "1.0"

// BackupData is the complete portable snapshot of the six tables
type BackupData struct {
	Version         string                 `json:"version"`
	ExportedAt      time.Time              `json:"exported_at"`
	Words           []models.Word          `json:"words"`
	Groups          []models.Group         `json:"groups"`
	WordGroups      []wordGroupLink        `json:"words_groups"`
	StudyActivities []models.StudyActivity `json:"study_activities"`
	StudySessions   []models.StudySession  `json:"study_sessions"`
	WordReviewItems []models.WordReviewItem `json:"word_review_items"`
}

type wordGroupLink struct {
	WordID  int64 `json:"word_id"`
	GroupID int64 `json:"group_id"`
}

// BackupService exports and restores the full dataset as JSON
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes a snapshot of all six tables to w
func (s *BackupService) Export(w io.Writer) error {
	data := BackupData{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
	}

	if err := s.exportWords(&data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.exportGroups(&data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.exportActivities(&data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.exportSessions(&data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.exportReviews(&data); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (s *BackupService) exportWords(data *BackupData) error {
	rows, err := s.db.Query("SELECT id, kanji, romaji, english, parts FROM words ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var w models.Word
		var parts []byte
		if err := rows.Scan(&w.ID, &w.Kanji, &w.Romaji, &w.English, &parts); err != nil {
			return err
		}
		w.Parts = parts
		data.Words = append(data.Words, w)
	}
	return rows.Err()
}

func (s *BackupService) exportGroups(data *BackupData) error {
	rows, err := s.db.Query("SELECT id, name FROM groups ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return err
		}
		data.Groups = append(data.Groups, g)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	linkRows, err := s.db.Query("SELECT word_id, group_id FROM words_groups ORDER BY id")
	if err != nil {
		return err
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var link wordGroupLink
		if err := linkRows.Scan(&link.WordID, &link.GroupID); err != nil {
			return err
		}
		data.WordGroups = append(data.WordGroups, link)
	}
	return linkRows.Err()
}

func (s *BackupService) exportActivities(data *BackupData) error {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(description, ''), thumbnail_url, launch_url, created_at, updated_at
		FROM study_activities ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.StudyActivity
		err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.ThumbnailURL, &a.LaunchURL, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return err
		}
		data.StudyActivities = append(data.StudyActivities, a)
	}
	return rows.Err()
}

func (s *BackupService) exportSessions(data *BackupData) error {
	rows, err := s.db.Query("SELECT id, group_id, study_activity_id, created_at, updated_at FROM study_sessions ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ss models.StudySession
		if err := rows.Scan(&ss.ID, &ss.GroupID, &ss.StudyActivityID, &ss.CreatedAt, &ss.UpdatedAt); err != nil {
			return err
		}
		data.StudySessions = append(data.StudySessions, ss)
	}
	return rows.Err()
}

func (s *BackupService) exportReviews(data *BackupData) error {
	rows, err := s.db.Query("SELECT id, word_id, study_session_id, correct, created_at FROM word_review_items ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.WordReviewItem
		if err := rows.Scan(&item.ID, &item.WordID, &item.StudySessionID, &item.Correct, &item.CreatedAt); err != nil {
			return err
		}
		data.WordReviewItems = append(data.WordReviewItems, item)
	}
	return rows.Err()
}

// Import restores a snapshot. Rows are inserted parents-first so foreign
// keys hold at every step, inside one transaction. With clear set, all
// existing rows are deleted (children-first) before the load.
func (s *BackupService) Import(r io.Reader, clear bool) error {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("import: decode backup: %w", err)
	}
	if data.Version == "" {
		return fmt.Errorf("import: missing backup version")
	}

	return s.db.WithTx(func(tx *database.Tx) error {
		if clear {
			for _, table := range []string{
				"word_review_items", "study_sessions", "words_groups",
				"words", "groups", "study_activities",
			} {
				if _, err := tx.Exec("DELETE FROM " + table); err != nil {
					return fmt.Errorf("import: clear %s: %w", table, err)
				}
			}
		}

		for _, w := range data.Words {
			parts := string(w.Parts)
			if parts == "" {
				parts = "[]"
			}
			_, err := tx.Exec(
				"INSERT INTO words (id, kanji, romaji, english, parts) VALUES (?, ?, ?, ?, ?)",
				w.ID, w.Kanji, w.Romaji, w.English, parts,
			)
			if err != nil {
				return fmt.Errorf("import: word %d: %w", w.ID, err)
			}
		}

		for _, g := range data.Groups {
			if _, err := tx.Exec("INSERT INTO groups (id, name) VALUES (?, ?)", g.ID, g.Name); err != nil {
				return fmt.Errorf("import: group %d: %w", g.ID, err)
			}
		}

		for _, link := range data.WordGroups {
			_, err := tx.Exec(
				"INSERT INTO words_groups (word_id, group_id) VALUES (?, ?)",
				link.WordID, link.GroupID,
			)
			if err != nil {
				return fmt.Errorf("import: word %d group %d link: %w", link.WordID, link.GroupID, err)
			}
		}

		for _, a := range data.StudyActivities {
			_, err := tx.Exec(`
				INSERT INTO study_activities (id, name, description, thumbnail_url, launch_url, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, a.ID, a.Name, a.Description, a.ThumbnailURL, a.LaunchURL, a.CreatedAt, a.UpdatedAt)
			if err != nil {
				return fmt.Errorf("import: activity %d: %w", a.ID, err)
			}
		}

		for _, ss := range data.StudySessions {
			_, err := tx.Exec(`
				INSERT INTO study_sessions (id, group_id, study_activity_id, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?)
			`, ss.ID, ss.GroupID, ss.StudyActivityID, ss.CreatedAt, ss.UpdatedAt)
			if err != nil {
				return fmt.Errorf("import: session %d: %w", ss.ID, err)
			}
		}

		for _, item := range data.WordReviewItems {
			_, err := tx.Exec(`
				INSERT INTO word_review_items (id, word_id, study_session_id, correct, created_at)
				VALUES (?, ?, ?, ?, ?)
			`, item.ID, item.WordID, item.StudySessionID, item.Correct, item.CreatedAt)
			if err != nil {
				return fmt.Errorf("import: review %d: %w", item.ID, err)
			}
		}

		return nil
	})
}

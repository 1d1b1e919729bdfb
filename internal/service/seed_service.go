package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"langportal/internal/database"
	"langportal/internal/repository"
)

// SeedService loads starter vocabulary and activities from JSON files.
// Seeding is idempotent: it does nothing when data is already present,
// and a partial failure rolls the whole load back.
type SeedService struct {
	db        *database.DB
	seedsPath string
}

// NewSeedService creates a new seed service
func NewSeedService(db *database.DB, seedsPath string) *SeedService {
	return &SeedService{db: db, seedsPath: seedsPath}
}

type seedActivity struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	LaunchURL    string  `json:"launch_url"`
}

type seedWord struct {
	Kanji   string          `json:"kanji"`
	Romaji  string          `json:"romaji"`
	English string          `json:"english"`
	Parts   json.RawMessage `json:"parts"`
	Groups  []string        `json:"groups"`
}

// Seed loads seeds/study_activities.json and seeds/words.json in one
// transaction, creating groups as they are first referenced. Tables that
// already hold data are left alone.
func (s *SeedService) Seed() error {
	var words, activities int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&words); err != nil {
		return fmt.Errorf("seed: count words: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM study_activities").Scan(&activities); err != nil {
		return fmt.Errorf("seed: count activities: %w", err)
	}
	if words > 0 && activities > 0 {
		return nil
	}

	return s.db.WithTx(func(tx *database.Tx) error {
		if activities == 0 {
			if err := s.seedActivities(tx); err != nil {
				return err
			}
		}
		if words == 0 {
			if err := s.seedWords(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SeedService) seedActivities(tx *database.Tx) error {
	var entries []seedActivity
	if err := s.loadJSON("study_activities.json", &entries); err != nil {
		return err
	}

	activityRepo := repository.NewActivityRepository(tx)
	for _, entry := range entries {
		if _, err := activityRepo.Create(entry.Name, entry.Description, entry.ThumbnailURL, entry.LaunchURL); err != nil {
			return fmt.Errorf("seed activity %q: %w", entry.Name, err)
		}
	}

	log.Printf("Seeded %d study activities", len(entries))
	return nil
}

func (s *SeedService) seedWords(tx *database.Tx) error {
	var entries []seedWord
	if err := s.loadJSON("words.json", &entries); err != nil {
		return err
	}

	wordRepo := repository.NewWordRepository(tx)
	groupRepo := repository.NewGroupRepository(tx)
	groupIDs := map[string]int64{}

	for _, entry := range entries {
		wordID, err := wordRepo.Create(entry.Kanji, entry.Romaji, entry.English, entry.Parts)
		if err != nil {
			return fmt.Errorf("seed word %q: %w", entry.Romaji, err)
		}

		for _, groupName := range entry.Groups {
			groupID, ok := groupIDs[groupName]
			if !ok {
				group, err := groupRepo.Create(groupName)
				if err != nil {
					return fmt.Errorf("seed group %q: %w", groupName, err)
				}
				groupID = group.ID
				groupIDs[groupName] = groupID
			}
			if err := wordRepo.AddToGroup(wordID, groupID); err != nil {
				return fmt.Errorf("seed word %q group link: %w", entry.Romaji, err)
			}
		}
	}

	log.Printf("Seeded %d words across %d groups", len(entries), len(groupIDs))
	return nil
}

func (s *SeedService) loadJSON(filename string, v interface{}) error {
	content, err := os.ReadFile(filepath.Join(s.seedsPath, filename))
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("seed: parse %s: %w", filename, err)
	}
	return nil
}

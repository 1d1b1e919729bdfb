// Package importer loads vocabulary from Excel or CSV files into a group.
// This is the admin path for bulk vocabulary changes; words are otherwise
// immutable once seeded.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"langportal/internal/database"
	"langportal/internal/repository"
)

// Config defines one import run
type Config struct {
	FilePath      string // Path to the Excel or CSV file
	GroupName     string // Target group, created when it does not exist
	KanjiColumn   string // Column with the script form
	RomajiColumn  string // Column with the romanization
	EnglishColumn string // Column with the translation
	TagsColumn    string // Column with comma-separated tags (optional)
	SheetName     string // Sheet to read for Excel files
	StartRow      int    // First data row, 1-based (2 skips a header row)
}

// DefaultConfig returns the default column layout
func DefaultConfig() Config {
	return Config{
		KanjiColumn:   "A",
		RomajiColumn:  "B",
		EnglishColumn: "C",
		TagsColumn:    "D",
		SheetName:     "Sheet1",
		StartRow:      2,
	}
}

// Result summarizes one import run
type Result struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

type importRow struct {
	kanji   string
	romaji  string
	english string
	tags    []string
}

// Importer loads vocabulary files into the database
type Importer struct {
	db *database.DB
}

// New creates a new importer
func New(db *database.DB) *Importer {
	return &Importer{db: db}
}

// ImportWords reads the configured file and loads its rows into the
// target group inside one transaction. Rows missing any of the three
// required fields are skipped and reported, not fatal.
func (imp *Importer) ImportWords(config Config) (*Result, error) {
	if config.GroupName == "" {
		return nil, errors.New("import: group name is required")
	}

	var rows []importRow
	var err error
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config)
	} else {
		rows, err = readExcel(config)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{}
	err = imp.db.WithTx(func(tx *database.Tx) error {
		wordRepo := repository.NewWordRepository(tx)
		groupRepo := repository.NewGroupRepository(tx)

		group, err := groupRepo.GetByName(config.GroupName)
		if errors.Is(err, repository.ErrNotFound) {
			group, err = groupRepo.Create(config.GroupName)
		}
		if err != nil {
			return err
		}

		for i, row := range rows {
			result.TotalProcessed++

			if row.kanji == "" || row.romaji == "" || row.english == "" {
				result.Skipped++
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: missing required field", config.StartRow+i))
				continue
			}

			parts, err := json.Marshal(row.tags)
			if err != nil {
				return fmt.Errorf("import row %d: %w", config.StartRow+i, err)
			}

			wordID, err := wordRepo.Create(row.kanji, row.romaji, row.english, parts)
			if err != nil {
				return fmt.Errorf("import row %d: %w", config.StartRow+i, err)
			}
			if err := wordRepo.AddToGroup(wordID, group.ID); err != nil {
				return fmt.Errorf("import row %d: %w", config.StartRow+i, err)
			}
			result.Created++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func readExcel(config Config) ([]importRow, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("import: open excel file: %w", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("import: read sheet %q: %w", config.SheetName, err)
	}

	columns := map[string]int{}
	for _, name := range []string{config.KanjiColumn, config.RomajiColumn, config.EnglishColumn, config.TagsColumn} {
		if name == "" {
			continue
		}
		idx, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return nil, fmt.Errorf("import: column %q: %w", name, err)
		}
		columns[name] = idx - 1
	}

	cell := func(row []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var rows []importRow
	for i, row := range sheetRows {
		if i+1 < config.StartRow {
			continue
		}
		rows = append(rows, importRow{
			kanji:   cell(row, config.KanjiColumn),
			romaji:  cell(row, config.RomajiColumn),
			english: cell(row, config.EnglishColumn),
			tags:    splitTags(cell(row, config.TagsColumn)),
		})
	}
	return rows, nil
}

func readCSV(config Config) ([]importRow, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("import: open csv file: %w", err)
	}
	defer f.Close()

	// CSV files use fixed positional columns: kanji, romaji, english, tags
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows []importRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("import: read csv: %w", err)
		}
		line++
		if line < config.StartRow {
			continue
		}

		get := func(idx int) string {
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}
		rows = append(rows, importRow{
			kanji:   get(0),
			romaji:  get(1),
			english: get(2),
			tags:    splitTags(get(3)),
		})
	}
	return rows, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

package repository

import (
	"database/sql"

	"langportal/internal/models"
)

func scanWordsWithStats(rows *sql.Rows) ([]models.WordWithStats, error) {
	words := []models.WordWithStats{}
	for rows.Next() {
		var w models.WordWithStats
		var parts []byte
		err := rows.Scan(
			&w.ID,
			&w.Kanji,
			&w.Romaji,
			&w.English,
			&parts,
			&w.TimesReviewed,
			&w.TimesCorrect,
		)
		if err != nil {
			return nil, err
		}
		w.Parts = parts
		words = append(words, w)
	}
	return words, rows.Err()
}

package models

import "encoding/json"

// Word represents one vocabulary entry. Parts carries the word's tag list
// exactly as stored, a JSON array serialized to text.
type Word struct {
	ID      int64           `json:"id"`
	Kanji   string          `json:"kanji"`
	Romaji  string          `json:"romaji"`
	English string          `json:"english"`
	Parts   json.RawMessage `json:"parts"`
}

// WordWithStats is a word with its review aggregate. TimesReviewed counts
// distinct sessions the word appeared in; TimesCorrect counts correct
// review rows. Both are recomputed on read, never stored.
type WordWithStats struct {
	Word
	TimesReviewed int `json:"times_reviewed"`
	TimesCorrect  int `json:"times_correct"`
}

// WordDetail is a word with its aggregate and the groups it belongs to
type WordDetail struct {
	WordWithStats
	Groups []Group `json:"groups"`
}

package models

import "time"

// WordReviewItem is one recorded outcome for one word within one session.
// Rows are append-only; they are never updated or deleted individually.
type WordReviewItem struct {
	ID             int64     `json:"id"`
	WordID         int64     `json:"word_id"`
	StudySessionID int64     `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

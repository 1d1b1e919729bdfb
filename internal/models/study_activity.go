package models

import "time"

// StudyActivity is a reusable exercise type with a launch target.
// UpdatedAt is refreshed by a database trigger on every update.
type StudyActivity struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	LaunchURL    string    `json:"launch_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

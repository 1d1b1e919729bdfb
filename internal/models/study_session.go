package models

import "time"

// StudySession is one study event against one group using one activity.
// CreatedAt is the only timestamp tracked; it stands in for both start and
// end time.
type StudySession struct {
	ID              int64     `json:"id"`
	GroupID         int64     `json:"group_id"`
	StudyActivityID int64     `json:"study_activity_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SessionWithDetails is a session joined with its group and activity names
type SessionWithDetails struct {
	ID               int64     `json:"id"`
	GroupID          int64     `json:"group_id"`
	GroupName        string    `json:"group_name"`
	ActivityID       int64     `json:"activity_id"`
	ActivityName     string    `json:"activity_name"`
	CreatedAt        time.Time `json:"created_at"`
	ReviewItemsCount int       `json:"review_items_count"`
}

// ActivitySession is a session as listed under a study activity, with its
// per-session review outcome counts
type ActivitySession struct {
	ID           int64     `json:"id"`
	GroupID      int64     `json:"group_id"`
	GroupName    string    `json:"group_name"`
	CreatedAt    time.Time `json:"created_at"`
	ReviewCount  int       `json:"review_count"`
	CorrectCount int       `json:"correct_count"`
}

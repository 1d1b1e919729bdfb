package models

import "time"

// GroupProgress is the per-group study progress aggregate. A mastered word
// is one with at least one correct review. ProgressPercentage is 0 for a
// group with no words.
type GroupProgress struct {
	GroupID            int64  `json:"group_id"`
	GroupName          string `json:"group_name"`
	TotalWords         int    `json:"total_words"`
	MasteredWords      int    `json:"mastered_words"`
	ProgressPercentage int    `json:"progress_percentage"`
}

// QuickStats is the dashboard summary aggregate
type QuickStats struct {
	SuccessRate        float64 `json:"success_rate"`
	TotalStudySessions int     `json:"total_study_sessions"`
	TotalActiveGroups  int     `json:"total_active_groups"`
	StudyStreakDays    int     `json:"study_streak_days"`
}

// RecentSession is the most recent session with its review outcome counts
type RecentSession struct {
	ID           int64     `json:"id"`
	GroupID      int64     `json:"group_id"`
	ActivityName string    `json:"activity_name"`
	CreatedAt    time.Time `json:"created_at"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
}

// LastSession is the most recent session with its joined names
type LastSession struct {
	ID              int64     `json:"id"`
	GroupID         int64     `json:"group_id"`
	StudyActivityID int64     `json:"study_activity_id"`
	GroupName       string    `json:"group_name"`
	ActivityName    string    `json:"activity_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// SystemStats aggregates counts across all six tables. Every field reports
// 0 when its source table is empty; none are ever omitted.
type SystemStats struct {
	Words         WordStats    `json:"words"`
	Groups        GroupStats   `json:"groups"`
	StudySessions SessionStats `json:"study_sessions"`
	Reviews       ReviewStats  `json:"reviews"`
	CurrentStreak int          `json:"current_streak"`
}

// WordStats counts the vocabulary table
type WordStats struct {
	TotalWords int `json:"total_words"`
}

// GroupStats counts groups and their average size
type GroupStats struct {
	TotalGroups      int     `json:"total_groups"`
	AvgWordsPerGroup float64 `json:"avg_words_per_group"`
}

// SessionStats counts study sessions and what they touched
type SessionStats struct {
	TotalSessions  int `json:"total_sessions"`
	GroupsStudied  int `json:"groups_studied"`
	ActivitiesUsed int `json:"activities_used"`
}

// ReviewStats counts review rows and overall accuracy
type ReviewStats struct {
	TotalReviews       int     `json:"total_reviews"`
	CorrectReviews     int     `json:"correct_reviews"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
}

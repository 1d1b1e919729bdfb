package repository

import (
	"database/sql"
	"fmt"
	"math"

	"langportal/internal/database"
	"langportal/internal/models"
)

// streakWindowDays is the trailing window for the study streak: the streak
// is the number of distinct calendar dates with at least one session in
// the last seven days.
const streakWindowDays = 7

// StatsRepository computes derived statistics. Everything here is
// recomputed from the base tables on every call; no aggregate is stored.
type StatsRepository struct {
	db database.DBTX
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// StudyProgress returns per-group progress. A word is mastered once it has
// at least one correct review. Groups with no words report 0 percent.
func (r *StatsRepository) StudyProgress() ([]models.GroupProgress, error) {
	rows, err := r.db.Query(`
		SELECT g.id, g.name,
		       COUNT(DISTINCT wg.word_id) as total_words,
		       COUNT(DISTINCT CASE WHEN wri.correct THEN wg.word_id END) as mastered_words
		FROM groups g
		LEFT JOIN words_groups wg ON wg.group_id = g.id
		LEFT JOIN word_review_items wri ON wri.word_id = wg.word_id
		GROUP BY g.id, g.name
		ORDER BY g.name
	`)
	if err != nil {
		return nil, fmt.Errorf("study progress: %w", err)
	}
	defer rows.Close()

	progress := []models.GroupProgress{}
	for rows.Next() {
		var p models.GroupProgress
		if err := rows.Scan(&p.GroupID, &p.GroupName, &p.TotalWords, &p.MasteredWords); err != nil {
			return nil, fmt.Errorf("study progress: %w", err)
		}
		if p.TotalWords > 0 {
			p.ProgressPercentage = int(math.Round(float64(p.MasteredWords) / float64(p.TotalWords) * 100))
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

// QuickStats returns the dashboard summary. Every value defaults to 0 on
// empty tables; success_rate is 0, not null, when no reviews exist.
func (r *StatsRepository) QuickStats() (*models.QuickStats, error) {
	stats := &models.QuickStats{}

	var successRate sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT AVG(CASE WHEN correct THEN 100.0 ELSE 0.0 END)
		FROM word_review_items
	`).Scan(&successRate)
	if err != nil {
		return nil, fmt.Errorf("quick stats: success rate: %w", err)
	}
	stats.SuccessRate = roundTo2(successRate.Float64)

	err = r.db.QueryRow("SELECT COUNT(*) FROM study_sessions").Scan(&stats.TotalStudySessions)
	if err != nil {
		return nil, fmt.Errorf("quick stats: session count: %w", err)
	}

	err = r.db.QueryRow("SELECT COUNT(DISTINCT group_id) FROM study_sessions").Scan(&stats.TotalActiveGroups)
	if err != nil {
		return nil, fmt.Errorf("quick stats: active groups: %w", err)
	}

	streak, err := r.StudyStreakDays()
	if err != nil {
		return nil, err
	}
	stats.StudyStreakDays = streak

	return stats, nil
}

// StudyStreakDays counts distinct calendar dates with at least one session
// in the trailing window.
func (r *StatsRepository) StudyStreakDays() (int, error) {
	dialect := r.db.GetDialect()
	query := fmt.Sprintf(
		"SELECT COUNT(DISTINCT %s) FROM study_sessions WHERE created_at >= %s",
		dialect.DateExpr("created_at"),
		dialect.RecentCutoffExpr(streakWindowDays),
	)

	var days int
	if err := r.db.QueryRow(query).Scan(&days); err != nil {
		return 0, fmt.Errorf("study streak: %w", err)
	}
	return days, nil
}

// SystemStats aggregates counts across all tables. Each sub-aggregate is
// an independent query so one empty table cannot null out another's
// fields.
func (r *StatsRepository) SystemStats() (*models.SystemStats, error) {
	stats := &models.SystemStats{}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&stats.Words.TotalWords); err != nil {
		return nil, fmt.Errorf("system stats: words: %w", err)
	}

	var avgWords sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT COUNT(*), AVG(word_count)
		FROM (
			SELECT g.id, COUNT(wg.word_id) as word_count
			FROM groups g
			LEFT JOIN words_groups wg ON g.id = wg.group_id
			GROUP BY g.id
		) group_counts
	`).Scan(&stats.Groups.TotalGroups, &avgWords)
	if err != nil {
		return nil, fmt.Errorf("system stats: groups: %w", err)
	}
	stats.Groups.AvgWordsPerGroup = roundTo2(avgWords.Float64)

	err = r.db.QueryRow(`
		SELECT COUNT(*), COUNT(DISTINCT group_id), COUNT(DISTINCT study_activity_id)
		FROM study_sessions
	`).Scan(&stats.StudySessions.TotalSessions, &stats.StudySessions.GroupsStudied, &stats.StudySessions.ActivitiesUsed)
	if err != nil {
		return nil, fmt.Errorf("system stats: sessions: %w", err)
	}

	var correct sql.NullInt64
	var accuracy sql.NullFloat64
	err = r.db.QueryRow(`
		SELECT COUNT(*),
		       SUM(CASE WHEN correct THEN 1 ELSE 0 END),
		       AVG(CASE WHEN correct THEN 100.0 ELSE 0.0 END)
		FROM word_review_items
	`).Scan(&stats.Reviews.TotalReviews, &correct, &accuracy)
	if err != nil {
		return nil, fmt.Errorf("system stats: reviews: %w", err)
	}
	stats.Reviews.CorrectReviews = int(correct.Int64)
	stats.Reviews.AccuracyPercentage = roundTo2(accuracy.Float64)

	streak, err := r.StudyStreakDays()
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// LastSession returns the most recent session with joined names, or nil
// when no sessions exist. Ties on created_at break toward the highest id.
func (r *StatsRepository) LastSession() (*models.LastSession, error) {
	var s models.LastSession
	err := r.db.QueryRow(`
		SELECT ss.id, ss.group_id, ss.study_activity_id, g.name, sa.name, ss.created_at
		FROM study_sessions ss
		JOIN groups g ON ss.group_id = g.id
		JOIN study_activities sa ON ss.study_activity_id = sa.id
		ORDER BY ss.created_at DESC, ss.id DESC
		LIMIT 1
	`).Scan(&s.ID, &s.GroupID, &s.StudyActivityID, &s.GroupName, &s.ActivityName, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last session: %w", err)
	}
	return &s, nil
}

// RecentSession returns the most recent session with its review outcome
// counts, or nil when no sessions exist.
func (r *StatsRepository) RecentSession() (*models.RecentSession, error) {
	var s models.RecentSession
	err := r.db.QueryRow(`
		SELECT ss.id, ss.group_id, sa.name, ss.created_at,
		       COALESCE(SUM(CASE WHEN wri.correct THEN 1 ELSE 0 END), 0) as correct_count,
		       COALESCE(SUM(CASE WHEN wri.correct THEN 0 ELSE 1 END), 0) as wrong_count
		FROM study_sessions ss
		JOIN study_activities sa ON ss.study_activity_id = sa.id
		LEFT JOIN word_review_items wri ON wri.study_session_id = ss.id
		GROUP BY ss.id, ss.group_id, sa.name, ss.created_at
		ORDER BY ss.created_at DESC, ss.id DESC
		LIMIT 1
	`).Scan(&s.ID, &s.GroupID, &s.ActivityName, &s.CreatedAt, &s.CorrectCount, &s.WrongCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recent session: %w", err)
	}
	return &s, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

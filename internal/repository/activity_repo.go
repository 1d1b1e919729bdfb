package repository

import (
	"database/sql"
	"fmt"

	"langportal/internal/database"
	"langportal/internal/models"
)

// ActivityRepository handles study activity database operations
type ActivityRepository struct {
	db database.DBTX
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db database.DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = "id, name, description, thumbnail_url, launch_url, created_at, updated_at"

func scanActivity(row *sql.Row) (*models.StudyActivity, error) {
	var a models.StudyActivity
	var description sql.NullString
	err := row.Scan(
		&a.ID,
		&a.Name,
		&description,
		&a.ThumbnailURL,
		&a.LaunchURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Description = description.String
	return &a, nil
}

// List returns all study activities ordered by name. The catalog is small
// and seeded by admins, so it is not paginated.
func (r *ActivityRepository) List() ([]models.StudyActivity, error) {
	rows, err := r.db.Query("SELECT " + activityColumns + " FROM study_activities ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []models.StudyActivity{}
	for rows.Next() {
		var a models.StudyActivity
		var description sql.NullString
		err := rows.Scan(&a.ID, &a.Name, &description, &a.ThumbnailURL, &a.LaunchURL, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		a.Description = description.String
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// Get returns a single activity or ErrNotFound
func (r *ActivityRepository) Get(id int64) (*models.StudyActivity, error) {
	a, err := scanActivity(r.db.QueryRow("SELECT "+activityColumns+" FROM study_activities WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study activity %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get study activity %d: %w", id, err)
	}
	return a, nil
}

// Exists reports whether an activity with the given id exists
func (r *ActivityRepository) Exists(id int64) (bool, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM study_activities WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check study activity %d: %w", id, err)
	}
	return n > 0, nil
}

// Create inserts a new study activity and returns it
func (r *ActivityRepository) Create(name, description string, thumbnailURL *string, launchURL string) (*models.StudyActivity, error) {
	id, err := r.db.ExecReturningID(`
		INSERT INTO study_activities (name, description, thumbnail_url, launch_url)
		VALUES (?, ?, ?, ?)
	`, name, description, thumbnailURL, launchURL)
	if err != nil {
		return nil, fmt.Errorf("create study activity: %w", err)
	}
	return r.Get(id)
}

// Update rewrites an activity's fields. The updated_at column is refreshed
// by the schema trigger, not by this statement.
func (r *ActivityRepository) Update(id int64, name, description string, thumbnailURL *string, launchURL string) (*models.StudyActivity, error) {
	result, err := r.db.Exec(`
		UPDATE study_activities
		SET name = ?, description = ?, thumbnail_url = ?, launch_url = ?
		WHERE id = ?
	`, name, description, thumbnailURL, launchURL, id)
	if err != nil {
		return nil, fmt.Errorf("update study activity %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update study activity %d: %w", id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("study activity %d: %w", id, ErrNotFound)
	}
	return r.Get(id)
}

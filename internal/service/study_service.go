package service

import (
	"langportal/internal/models"
	"langportal/internal/repository"
	"langportal/internal/validation"
)

// StudyService handles study session and review operations
type StudyService struct {
	sessionRepo  *repository.SessionRepository
	activityRepo *repository.ActivityRepository
}

// NewStudyService creates a new study service
func NewStudyService(sessionRepo *repository.SessionRepository, activityRepo *repository.ActivityRepository) *StudyService {
	return &StudyService{sessionRepo: sessionRepo, activityRepo: activityRepo}
}

// CreateSession starts a study session after checking that both the group
// and the activity exist.
func (s *StudyService) CreateSession(groupID, activityID int64) (*models.SessionWithDetails, error) {
	return s.sessionRepo.Create(groupID, activityID)
}

// GetSession returns one session with joined names, or ErrNotFound
func (s *StudyService) GetSession(id int64) (*models.SessionWithDetails, error) {
	return s.sessionRepo.Get(id)
}

// ListSessions returns one page of sessions, optionally filtered by group
func (s *StudyService) ListSessions(pageStr, limitStr string, groupID *int64) (*models.SessionList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}

	sessions, total, err := s.sessionRepo.List(page, groupID)
	if err != nil {
		return nil, err
	}

	return &models.SessionList{
		Items:      sessions,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// RecordReview appends one review outcome to a session
func (s *StudyService) RecordReview(sessionID, wordID int64, correct bool) (*models.WordReviewItem, error) {
	return s.sessionRepo.RecordReview(sessionID, wordID, correct)
}

// ListActivities returns the full study activity catalog
func (s *StudyService) ListActivities() ([]models.StudyActivity, error) {
	return s.activityRepo.List()
}

// GetActivity returns one activity or ErrNotFound
func (s *StudyService) GetActivity(id int64) (*models.StudyActivity, error) {
	return s.activityRepo.Get(id)
}

// CreateActivity adds a new activity to the catalog
func (s *StudyService) CreateActivity(name, description string, thumbnailURL *string, launchURL string) (*models.StudyActivity, error) {
	return s.activityRepo.Create(name, description, thumbnailURL, launchURL)
}

// UpdateActivity rewrites an activity's fields
func (s *StudyService) UpdateActivity(id int64, name, description string, thumbnailURL *string, launchURL string) (*models.StudyActivity, error) {
	return s.activityRepo.Update(id, name, description, thumbnailURL, launchURL)
}

// ListActivitySessions returns one page of the sessions that used an
// activity. The activity must exist.
func (s *StudyService) ListActivitySessions(activityID int64, pageStr, limitStr string) (*models.ActivitySessionList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}

	if _, err := s.activityRepo.Get(activityID); err != nil {
		return nil, err
	}

	sessions, total, err := s.sessionRepo.ListForActivity(activityID, page)
	if err != nil {
		return nil, err
	}

	return &models.ActivitySessionList{
		Items:      sessions,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

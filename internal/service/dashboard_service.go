package service

import (
	"langportal/internal/models"
	"langportal/internal/repository"
)

// DashboardService exposes the aggregation engine to the dashboard endpoints
type DashboardService struct {
	statsRepo *repository.StatsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(statsRepo *repository.StatsRepository) *DashboardService {
	return &DashboardService{statsRepo: statsRepo}
}

// StudyProgress returns per-group progress for every group
func (s *DashboardService) StudyProgress() ([]models.GroupProgress, error) {
	return s.statsRepo.StudyProgress()
}

// QuickStats returns the dashboard summary
func (s *DashboardService) QuickStats() (*models.QuickStats, error) {
	return s.statsRepo.QuickStats()
}

// LastSession returns the most recent session, or nil when none exist
func (s *DashboardService) LastSession() (*models.LastSession, error) {
	return s.statsRepo.LastSession()
}

// RecentSession returns the most recent session with outcome counts, or
// nil when none exist
func (s *DashboardService) RecentSession() (*models.RecentSession, error) {
	return s.statsRepo.RecentSession()
}

package service

import (
	"langportal/internal/models"
	"langportal/internal/repository"
)

// SystemService exposes maintenance and system-wide statistics operations
type SystemService struct {
	systemRepo *repository.SystemRepository
	statsRepo  *repository.StatsRepository
}

// NewSystemService creates a new system service
func NewSystemService(systemRepo *repository.SystemRepository, statsRepo *repository.StatsRepository) *SystemService {
	return &SystemService{systemRepo: systemRepo, statsRepo: statsRepo}
}

// Stats returns counts across all tables
func (s *SystemService) Stats() (*models.SystemStats, error) {
	return s.statsRepo.SystemStats()
}

// Health checks storage connectivity, FK enforcement and table presence
func (s *SystemService) Health() (*repository.Health, error) {
	return s.systemRepo.CheckHealth()
}

// Vacuum reclaims storage space where the dialect supports it
func (s *SystemService) Vacuum() (bool, error) {
	return s.systemRepo.Vacuum()
}

// ResetHistory deletes all sessions and reviews, keeping vocabulary
func (s *SystemService) ResetHistory() error {
	return s.systemRepo.ResetHistory()
}

// FullReset deletes everything from all six tables
func (s *SystemService) FullReset() error {
	return s.systemRepo.FullReset()
}

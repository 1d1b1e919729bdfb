package service

import (
	"langportal/internal/models"
	"langportal/internal/repository"
	"langportal/internal/validation"
)

// GroupService handles word group queries behind the REST boundary
type GroupService struct {
	groupRepo   *repository.GroupRepository
	sessionRepo *repository.SessionRepository
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo *repository.GroupRepository, sessionRepo *repository.SessionRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, sessionRepo: sessionRepo}
}

// ListGroups returns one page of groups with word counts
func (s *GroupService) ListGroups(pageStr, limitStr string) (*models.GroupList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}

	groups, total, err := s.groupRepo.List(page)
	if err != nil {
		return nil, err
	}

	return &models.GroupList{
		Items:      groups,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetGroup returns a single group or ErrNotFound
func (s *GroupService) GetGroup(id int64) (*models.Group, error) {
	return s.groupRepo.Get(id)
}

// ListGroupWords returns one page of a group's words with review
// statistics. An unknown group is ErrNotFound, checked before the word
// query runs.
func (s *GroupService) ListGroupWords(groupID int64, pageStr, limitStr, sortBy, order string) (*models.WordList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}
	sort, err := validation.ParseSort(sortBy, order, validation.WordSortColumns, "romaji")
	if err != nil {
		return nil, err
	}

	if _, err := s.groupRepo.Get(groupID); err != nil {
		return nil, err
	}

	words, total, err := s.groupRepo.ListWords(groupID, page, sort)
	if err != nil {
		return nil, err
	}

	return &models.WordList{
		Items:      words,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// ListGroupSessions returns one page of a group's study sessions. A group
// that does not exist is ErrNotFound; a group that exists but has no
// sessions is an empty page. The two outcomes are deliberately distinct.
func (s *GroupService) ListGroupSessions(groupID int64, pageStr, limitStr string) (*models.SessionList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}

	if _, err := s.groupRepo.Get(groupID); err != nil {
		return nil, err
	}

	sessions, total, err := s.sessionRepo.List(page, &groupID)
	if err != nil {
		return nil, err
	}

	return &models.SessionList{
		Items:      sessions,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

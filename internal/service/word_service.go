package service

import (
	"langportal/internal/models"
	"langportal/internal/repository"
	"langportal/internal/validation"
)

// WordService handles vocabulary queries behind the REST boundary
type WordService struct {
	wordRepo *repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// ListWords validates pagination and sort input, then returns one page of
// words in the standard list envelope. All raw string parameters come
// straight from the query string; anything malformed is rejected here,
// before a query runs.
func (s *WordService) ListWords(pageStr, limitStr, sortBy, order string) (*models.WordList, error) {
	page, err := validation.ParsePage(pageStr, limitStr)
	if err != nil {
		return nil, err
	}
	sort, err := validation.ParseSort(sortBy, order, validation.WordSortColumns, "romaji")
	if err != nil {
		return nil, err
	}

	words, total, err := s.wordRepo.List(page, sort)
	if err != nil {
		return nil, err
	}

	return &models.WordList{
		Items:      words,
		Pagination: models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetWord returns one word with review statistics and group memberships
func (s *WordService) GetWord(id int64) (*models.WordDetail, error) {
	return s.wordRepo.Get(id)
}

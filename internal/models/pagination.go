package models

// Pagination is the metadata block attached to every list response
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes total_pages = ceil(total/limit)
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// WordList is the paginated words envelope
type WordList struct {
	Items      []WordWithStats `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// GroupList is the paginated groups envelope
type GroupList struct {
	Items      []GroupWithCount `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// SessionList is the paginated sessions envelope
type SessionList struct {
	Items      []SessionWithDetails `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// ActivitySessionList is the paginated envelope for sessions of one activity
type ActivitySessionList struct {
	Items      []ActivitySession `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

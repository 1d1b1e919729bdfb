// Package validation checks pagination and sort inputs before any query
// runs. Sort keys are resolved through fixed allow-list maps; nothing a
// client sends is ever placed into SQL text directly.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Error marks input rejected before any query executed
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Page holds validated pagination parameters
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage validates page and limit query values. Empty strings fall back
// to the defaults; anything non-numeric or out of range is rejected.
func ParsePage(pageStr, limitStr string) (Page, error) {
	page := DefaultPage
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return Page{}, &Error{Field: "page", Message: "must be an integer >= 1"}
		}
		page = n
	}

	limit := DefaultLimit
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > MaxLimit {
			return Page{}, &Error{Field: "limit", Message: fmt.Sprintf("must be an integer between 1 and %d", MaxLimit)}
		}
		limit = n
	}

	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}, nil
}

// Sort holds a validated ORDER BY column and direction. Column is an
// actual column identifier taken from an allow-list, never client input.
type Sort struct {
	Column string
	Desc   bool
}

// WordSortColumns maps public sort keys to word table columns
var WordSortColumns = map[string]string{
	"kanji":   "kanji",
	"romaji":  "romaji",
	"english": "english",
	"id":      "id",
}

// ParseSort validates sort_by and order against an allow-list of column
// names. Unknown sort keys are a client error, not a SQL pass-through.
func ParseSort(sortBy, order string, allowed map[string]string, defaultColumn string) (Sort, error) {
	column := defaultColumn
	if sortBy != "" {
		c, ok := allowed[strings.ToLower(sortBy)]
		if !ok {
			return Sort{}, &Error{Field: "sort_by", Message: fmt.Sprintf("unknown sort column %q", sortBy)}
		}
		column = c
	}

	switch strings.ToLower(order) {
	case "", "asc":
		return Sort{Column: column}, nil
	case "desc":
		return Sort{Column: column, Desc: true}, nil
	default:
		return Sort{}, &Error{Field: "order", Message: "must be asc or desc"}
	}
}

// Direction returns the SQL keyword for the sort direction
func (s Sort) Direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}

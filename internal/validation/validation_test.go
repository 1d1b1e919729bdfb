package validation

import "testing"

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{
			name:       "defaults when empty",
			page:       "",
			limit:      "",
			wantPage:   1,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "explicit values",
			page:       "3",
			limit:      "25",
			wantPage:   3,
			wantLimit:  25,
			wantOffset: 50,
		},
		{
			name:       "limit at maximum",
			page:       "1",
			limit:      "100",
			wantPage:   1,
			wantLimit:  100,
			wantOffset: 0,
		},
		{
			name:    "page zero",
			page:    "0",
			limit:   "10",
			wantErr: true,
		},
		{
			name:    "negative page",
			page:    "-1",
			limit:   "10",
			wantErr: true,
		},
		{
			name:    "non-numeric page",
			page:    "abc",
			limit:   "10",
			wantErr: true,
		},
		{
			name:    "limit zero",
			page:    "1",
			limit:   "0",
			wantErr: true,
		},
		{
			name:    "limit over maximum",
			page:    "1",
			limit:   "101",
			wantErr: true,
		},
		{
			name:    "non-numeric limit",
			page:    "1",
			limit:   "ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.page, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePage(%q, %q) error = %v, wantErr %v", tt.page, tt.limit, err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *Error
				if !asValidationError(err, &vErr) {
					t.Errorf("ParsePage(%q, %q) error type = %T, want *Error", tt.page, tt.limit, err)
				}
				return
			}
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
				t.Errorf("ParsePage(%q, %q) = %+v, want page %d limit %d offset %d",
					tt.page, tt.limit, got, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name       string
		sortBy     string
		order      string
		wantColumn string
		wantDesc   bool
		wantErr    bool
	}{
		{
			name:       "defaults when empty",
			sortBy:     "",
			order:      "",
			wantColumn: "romaji",
		},
		{
			name:       "explicit column ascending",
			sortBy:     "kanji",
			order:      "asc",
			wantColumn: "kanji",
		},
		{
			name:       "explicit column descending",
			sortBy:     "english",
			order:      "desc",
			wantColumn: "english",
			wantDesc:   true,
		},
		{
			name:       "case insensitive",
			sortBy:     "Romaji",
			order:      "DESC",
			wantColumn: "romaji",
			wantDesc:   true,
		},
		{
			name:    "unknown column",
			sortBy:  "created_at",
			order:   "asc",
			wantErr: true,
		},
		{
			name:    "sql injection attempt rejected",
			sortBy:  "romaji; DROP TABLE words",
			order:   "asc",
			wantErr: true,
		},
		{
			name:    "bad order",
			sortBy:  "romaji",
			order:   "sideways",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.sortBy, tt.order, WordSortColumns, "romaji")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSort(%q, %q) error = %v, wantErr %v", tt.sortBy, tt.order, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Column != tt.wantColumn || got.Desc != tt.wantDesc {
				t.Errorf("ParseSort(%q, %q) = %+v, want column %q desc %v",
					tt.sortBy, tt.order, got, tt.wantColumn, tt.wantDesc)
			}
		})
	}
}

func TestSortDirection(t *testing.T) {
	if got := (Sort{Column: "romaji"}).Direction(); got != "ASC" {
		t.Errorf("Direction() = %q, want ASC", got)
	}
	if got := (Sort{Column: "romaji", Desc: true}).Direction(); got != "DESC" {
		t.Errorf("Direction() = %q, want DESC", got)
	}
}

func asValidationError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}

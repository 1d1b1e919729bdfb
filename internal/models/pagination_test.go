package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
	}{
		{
			name:           "exact multiple",
			page:           1,
			limit:          10,
			total:          20,
			wantTotalPages: 2,
		},
		{
			name:           "partial last page",
			page:           1,
			limit:          10,
			total:          21,
			wantTotalPages: 3,
		},
		{
			name:           "empty result",
			page:           1,
			limit:          10,
			total:          0,
			wantTotalPages: 0,
		},
		{
			name:           "single item",
			page:           1,
			limit:          10,
			total:          1,
			wantTotalPages: 1,
		},
		{
			name:           "limit one",
			page:           5,
			limit:          1,
			total:          5,
			wantTotalPages: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.limit, tt.total)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
					tt.page, tt.limit, tt.total, got.TotalPages, tt.wantTotalPages)
			}
			if got.Page != tt.page || got.Limit != tt.limit || got.Total != tt.total {
				t.Errorf("NewPagination(%d, %d, %d) = %+v", tt.page, tt.limit, tt.total, got)
			}
		})
	}
}

package store

import "testing"

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		params    PaginationParams
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", PaginationParams{}, 1, 12},
		{"negative page", PaginationParams{Page: -3, Limit: 20}, 1, 20},
		{"limit capped", PaginationParams{Page: 2, Limit: 500}, 2, 100},
		{"valid unchanged", PaginationParams{Page: 4, Limit: 12}, 4, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			if tt.params.Page != tt.wantPage {
				t.Errorf("Page: got %d, want %d", tt.params.Page, tt.wantPage)
			}
			if tt.params.Limit != tt.wantLimit {
				t.Errorf("Limit: got %d, want %d", tt.params.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 12}
	if got := p.Offset(); got != 24 {
		t.Errorf("Offset: got %d, want 24", got)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		params         PaginationParams
		wantTotalPages int
	}{
		{"exact multiple", 24, PaginationParams{Page: 1, Limit: 12}, 2},
		{"partial last page", 25, PaginationParams{Page: 1, Limit: 12}, 3},
		{"empty", 0, PaginationParams{Page: 1, Limit: 12}, 0},
		{"single item", 1, PaginationParams{Page: 1, Limit: 12}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.total, tt.params)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages: got %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.Total != tt.total {
				t.Errorf("Total: got %d, want %d", got.Total, tt.total)
			}
		})
	}
}

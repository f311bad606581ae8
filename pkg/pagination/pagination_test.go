package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Validate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 30, p.Offset())
}

func TestPaginate(t *testing.T) {
	all := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name    string
		params  *PaginationParams
		want    []int
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"first page", &PaginationParams{Page: 1, PerPage: 3}, []int{1, 2, 3}, 3, true, false},
		{"last partial page", &PaginationParams{Page: 3, PerPage: 3}, []int{7}, 3, false, true},
		{"past the end", &PaginationParams{Page: 9, PerPage: 3}, []int{}, 3, false, true},
		{"defaults", nil, all, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(all, tt.params)
			assert.Equal(t, tt.want, res.Items)
			assert.Equal(t, int64(7), res.Pagination.Total)
			assert.Equal(t, tt.pages, res.Pagination.TotalPages)
			assert.Equal(t, tt.hasNext, res.Pagination.HasNext)
			assert.Equal(t, tt.hasPrev, res.Pagination.HasPrev)
		})
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	res := Paginate([]string{}, DefaultPagination())
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
}

package leadfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int
		wantPage int
	}{
		{"страница в пределах", 2, 25, 100, 2},
		{"страница за пределами поджимается к последней", 10, 25, 100, 4},
		{"неполная последняя страница", 10, 25, 101, 5},
		{"пустая выборка - первая страница", 3, 25, 0, 1},
		{"нулевая страница поднимается до первой", 0, 25, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, PageSize: tt.pageSize, Total: tt.total}
			p.Clamp()
			assert.Equal(t, tt.wantPage, p.Page)
		})
	}
}

func TestPagination_SetTotalShrinks(t *testing.T) {
	p := Pagination{Page: 5, PageSize: 25}

	p.SetTotal(30)

	assert.Equal(t, 30, p.Total)
	assert.Equal(t, 2, p.Page, "после сужения выборки страница поджимается")
}

func TestPagination_SetPageSizeResetsPage(t *testing.T) {
	p := Pagination{Page: 4, PageSize: 25, Total: 200}

	p.SetPageSize(50)

	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 1, p.Page)
}

func TestPagination_InvalidPageSizeFallsBack(t *testing.T) {
	p := NewPagination()

	p.SetPageSize(33)

	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestPagination_Offset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 50}
	assert.Equal(t, 100, p.Offset())
}

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"no params", "/wishlist", 1, 20, 0},
		{"explicit", "/wishlist?page=3&per_page=10", 3, 10, 20},
		{"invalid page falls back", "/wishlist?page=abc", 1, 20, 0},
		{"zero page falls back", "/wishlist?page=0", 1, 20, 0},
		{"negative per_page falls back", "/wishlist?per_page=-5", 1, 20, 0},
		{"per_page above cap falls back", "/wishlist?per_page=500", 1, 20, 0},
		{"per_page at cap", "/wishlist?per_page=100", 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := FromRequest(r)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestNewResult(t *testing.T) {
	data := []string{"a", "b", "c"}

	result := NewResult(data, 23, Params{Page: 2, PerPage: 10})

	assert.Equal(t, data, result.Data)
	assert.Equal(t, 23, result.TotalCount)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.PerPage)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasNext)
	assert.True(t, result.HasPrev)
}

func TestNewResult_SinglePage(t *testing.T) {
	result := NewResult([]int{1, 2}, 2, Params{Page: 1, PerPage: 20})

	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.False(t, result.HasPrev)
}

func TestNewResult_Empty(t *testing.T) {
	result := NewResult([]int{}, 0, Params{Page: 1, PerPage: 20})

	assert.Equal(t, 0, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.False(t, result.HasPrev)
}

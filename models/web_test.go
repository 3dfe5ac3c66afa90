package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name          string
		page, size    int
		total         int
		wantTotalPage int
	}{
		{name: "exact pages", page: 1, size: 10, total: 20, wantTotalPage: 2},
		{name: "partial last page", page: 1, size: 10, total: 21, wantTotalPage: 3},
		{name: "no results", page: 1, size: 10, total: 0, wantTotalPage: 0},
		{name: "page beyond last", page: 5, size: 10, total: 11, wantTotalPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paging := NewPaging(tt.page, tt.size, tt.total)

			assert.Equal(t, tt.page, paging.CurrentPage)
			assert.Equal(t, tt.wantTotalPage, paging.TotalPage)
			assert.Equal(t, tt.size, paging.Size)
		})
	}
}

package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, uint64(1), ParsePage(url.Values{}))
	assert.Equal(t, uint64(3), ParsePage(url.Values{"page": {"3"}}))
	assert.Equal(t, uint64(1), ParsePage(url.Values{"page": {"abc"}}))
	assert.Equal(t, uint64(1), ParsePage(url.Values{"page": {"0"}}))
	assert.Equal(t, uint64(1), ParsePage(url.Values{"page": {"-2"}}))
}

func TestClampPage(t *testing.T) {
	testCases := []struct {
		name       string
		page       uint64
		total      uint64
		limit      uint64
		wantPage   uint64
		wantOffset uint64
		wantPages  uint64
	}{
		{"первая страница", 1, 45, 20, 1, 0, 3},
		{"вторая страница", 2, 45, 20, 2, 20, 3},
		{"за последней страницей — последняя", 99, 45, 20, 3, 40, 3},
		{"пустой список", 5, 0, 20, 1, 0, 0},
		{"пустой список, первая страница", 1, 0, 20, 1, 0, 0},
		{"нулевая страница", 0, 45, 20, 1, 0, 3},
		{"ровно одна полная страница", 2, 20, 20, 1, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, offset, pages := ClampPage(tc.page, tc.total, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantPages, pages)
		})
	}
}

package utils

import (
	"net/url"
	"strconv"
)

// Размер страницы списков панели.
const PageSize = 20

type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages uint64 `json:"total_pages"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
}

func ParsePage(values url.Values) uint64 {
	page := uint64(1)
	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			page = p
		}
	}
	return page
}

// ClampPage приводит номер страницы к допустимому диапазону: запрос за
// последней страницей возвращает последнюю, а не ошибку.
func ClampPage(page, totalCount, limit uint64) (clamped uint64, offset uint64, totalPages uint64) {
	if limit == 0 {
		return 1, 0, 0
	}
	totalPages = (totalCount + limit - 1) / limit
	// Пустой список ведёт себя как одна пустая страница.
	lastPage := totalPages
	if lastPage == 0 {
		lastPage = 1
	}
	clamped = page
	if clamped < 1 {
		clamped = 1
	}
	if clamped > lastPage {
		clamped = lastPage
	}
	offset = (clamped - 1) * limit
	return clamped, offset, totalPages
}

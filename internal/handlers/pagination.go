package handlers

import (
	"strconv"

	"catalog-admin/internal/catalog"
)

// parsePageParam reads the ?page query, defaulting to the first page on
// anything missing or malformed.
func parsePageParam(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageNumbers expands the server-supplied page count into explicit page links.
// The metadata itself is opaque; nothing here recomputes paging.
func pageNumbers(meta catalog.PaginationMeta) []int {
	if meta.TotalPages < 1 {
		return nil
	}
	pages := make([]int, 0, meta.TotalPages)
	for i := 1; i <= meta.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

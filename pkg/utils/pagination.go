package utils

import (
	"math"
	"strconv"
)

// MaxOffset caps computed offsets; anything past it is an empty page.
const MaxOffset = math.MaxInt32

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset returns (page-1)*perPage, clamped to [0, MaxOffset] so a
// huge page number cannot overflow.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if int64(page-1) > MaxOffset/int64(perPage) {
		return MaxOffset
	}
	return (page - 1) * perPage
}

// Paginate returns the page of items starting at offset, clamped to bounds.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) || limit <= 0 {
		return []T{}
	}
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}

// ParseInt converts a query value to a positive int, falling back to
// defaultValue on anything else.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}

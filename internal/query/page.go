package query

import (
	"math"
	"strconv"
	"strings"
)

// ===========================================================================
// Pagination
// 1-based page number plus page size. Invalid input never fails, it falls
// back to the defaults
// ===========================================================================

// Default pagination bounds, overridable from configuration
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page a normalized page request
type Page struct {
	// Number 1-based page number
	Number int

	// Limit page size, within [1, maxLimit]
	Limit int
}

// NewPage normalizes page and limit.
// page < 1 becomes 1, limit < 1 becomes defaultLimit and limit > maxLimit
// becomes maxLimit. page is capped so that Offset()+Limit fits in an int.
func NewPage(page, limit, defaultLimit, maxLimit int) Page {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page > maxPage(limit) {
		page = maxPage(limit)
	}
	return Page{Number: page, Limit: limit}
}

// ParsePage is NewPage on raw query string values.
// Unparsable values count as absent.
func ParsePage(page, limit string, defaultLimit, maxLimit int) Page {
	return NewPage(atoiOrZero(page), atoiOrZero(limit), defaultLimit, maxLimit)
}

// maxPage largest page number whose window end does not overflow
func maxPage(limit int) int {
	return math.MaxInt / limit
}

// Offset index of the first item of the page.
// Saturates at math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	if p.Number-1 > (math.MaxInt-p.Limit)/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// Beyond reports whether the page starts at or after the end of a
// result set of total items
func (p Page) Beyond(total int64) bool {
	return int64(p.Offset()) >= total
}

// Paginate returns the [offset, offset+limit) window of items.
// An offset past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, p Page) []T {
	start := p.Offset()
	if p.Limit < 1 || start >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit < end-start {
		end = start + p.Limit
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

package input

import (
	"strconv"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// ResolvePageIndex maps a page selector onto a 0-based page index for a
// document with pageCount pages.
//
// Accepted selectors:
//   - "last" (or empty): final page
//   - "second-last": second from the end; requires at least two pages
//   - "0" or "1": first page
//   - positive N: Nth page, 1-indexed
//   - negative N: pageCount+N, counting back from the end
//
// Out-of-range or unparseable selectors fail with INVALID_PAGE_SELECTOR.
func ResolvePageIndex(spec string, pageCount int) (int, error) {
	switch spec {
	case "", "last":
		return pageCount - 1, nil
	case "second-last":
		if pageCount < 2 {
			return 0, errors.New(errors.ErrCodeInvalidPageSelector,
				"document has no second-last page (%d page(s))", pageCount)
		}
		return pageCount - 2, nil
	}

	n, err := strconv.Atoi(spec)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidPageSelector,
			"invalid page selector %q: use \"last\", \"second-last\", or a page number (1-%d)",
			spec, pageCount)
	}

	var index int
	switch {
	case n == 0:
		index = 0
	case n > 0:
		index = n - 1
	default:
		index = pageCount + n
	}

	if index < 0 || index >= pageCount {
		return 0, errors.New(errors.ErrCodeInvalidPageSelector,
			"page %d out of range (document has %d page(s))", n, pageCount)
	}
	return index, nil
}

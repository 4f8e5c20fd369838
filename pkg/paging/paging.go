// Package paging computes pagination info and the page-number window
// a listing surface renders, collapsing long ranges with gap markers.
package paging

// PageInfo describes one page of a listing result.
type PageInfo struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// New builds PageInfo for a total item count. TotalPages is never
// below 1, even for an empty result.
func New(total, page, pageSize int) PageInfo {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return PageInfo{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// Entry is one slot of a pagination window: a page number, or one of
// the two gap markers. The markers are distinct values so a rendering
// layer can assign stable identities to each.
type Entry int

const (
	GapLow  Entry = -1
	GapHigh Entry = -2
)

func (e Entry) IsGap() bool { return e < 0 }

// Window returns the page numbers to render for the current page.
// Up to 7 pages are emitted verbatim; beyond that the window keeps the
// first and last pages, the neighbors of the current page, and gap
// markers for the collapsed ranges.
func Window(current, total int) []Entry {
	entries := []Entry{1}

	if total <= 7 {
		for p := 2; p <= total; p++ {
			entries = append(entries, Entry(p))
		}
		return entries
	}

	if current > 3 {
		entries = append(entries, GapLow)
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	for p := start; p <= end; p++ {
		entries = append(entries, Entry(p))
	}

	if current < total-2 {
		entries = append(entries, GapHigh)
	}

	return append(entries, Entry(total))
}

// Clamp bounds a navigation target to [1, total].
func Clamp(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

package roster

import "strings"

// DefaultPageSize is the number of rows on a page unless configured otherwise.
const DefaultPageSize = 5

// PageSizes lists the page sizes offered by the pagination control.
var PageSizes = []int{5, 10, 20, 50}

// Filter is the user-controlled filter state.
type Filter struct {
	Search   string
	Category string
	Page     int // 1-based
	PageSize int
}

// DefaultFilter returns the initial filter: no search, unset category, page 1.
func DefaultFilter() Filter {
	return Filter{
		Category: CategoryUnset,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Result is one computed page plus the counts the pagination control needs.
type Result struct {
	Rows     []Record
	Total    int // matches before page slicing
	Page     int
	PageSize int
}

// TotalPages returns the number of pages needed for Total matches.
func (r Result) TotalPages() int {
	if r.PageSize <= 0 || r.Total <= 0 {
		return 0
	}
	return (r.Total + r.PageSize - 1) / r.PageSize
}

// Apply runs search, category filtering, and page slicing in that order.
// It never modifies records.
func Apply(records []Record, f Filter) Result {
	matched := Match(records, f.Search, f.Category)
	return Result{
		Rows:     Page(matched, f.Page, f.PageSize),
		Total:    len(matched),
		Page:     f.Page,
		PageSize: f.PageSize,
	}
}

// Match keeps records where some field contains search (case-insensitive) and,
// when category names a real category, whose gender equals it exactly.
func Match(records []Record, search, category string) []Record {
	needle := strings.ToLower(search)
	filterCategory := IsFilteringCategory(category)

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if needle != "" && !containsFold(rec, needle) {
			continue
		}
		if filterCategory && rec.Gender != category {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Page returns rows [(page-1)*size, page*size) of matched. Pages past the end
// (or below 1) are empty rather than clamped.
func Page(matched []Record, page, size int) []Record {
	if size <= 0 || page < 1 {
		return []Record{}
	}
	start := (page - 1) * size
	if start >= len(matched) {
		return []Record{}
	}
	end := min(start+size, len(matched))
	return cloneRecords(matched[start:end])
}

// IsFilteringCategory reports whether category restricts rows. The empty
// value and both sentinels do not.
func IsFilteringCategory(category string) bool {
	switch category {
	case "", CategoryUnset, CategoryShowAll:
		return false
	default:
		return true
	}
}

func containsFold(rec Record, needle string) bool {
	for _, text := range rec.Texts() {
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	return false
}

package roster

import (
	"slices"
	"strconv"
)

// Option is one entry in the category select.
type Option struct {
	Value string
	Label string
}

var categoryOptions = []Option{
	{CategoryUnset, "Filter"},
	{CategoryShowAll, "Show All"},
	{CategoryMale, "Male"},
	{CategoryFemale, "Female"},
}

// Categories returns the select options in display order.
func Categories() []Option {
	return slices.Clone(categoryOptions)
}

// CategoryLabel returns the display label for a category value.
func CategoryLabel(value string) string {
	for _, opt := range categoryOptions {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// NextCategory returns the option after current, wrapping around.
func NextCategory(current string) string {
	return stepCategory(current, 1)
}

// PrevCategory returns the option before current, wrapping around.
func PrevCategory(current string) string {
	return stepCategory(current, -1)
}

func stepCategory(current string, delta int) string {
	n := len(categoryOptions)
	for i, opt := range categoryOptions {
		if opt.Value == current {
			return categoryOptions[(i+delta+n)%n].Value
		}
	}
	return categoryOptions[0].Value
}

// NextPageSize returns the page size after current in PageSizes, wrapping.
func NextPageSize(current int) int {
	for i, size := range PageSizes {
		if size == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	for _, size := range PageSizes {
		if size > current {
			return size
		}
	}
	return PageSizes[0]
}

// Column describes one rendered table column.
type Column struct {
	Key   string
	Title string
	Width int
}

var allColumns = []Column{
	{FieldID, "ID", 6},
	{FieldName, "Name", 24},
	{FieldTrips, "Trips", 8},
	{FieldGender, "Gender", 10},
	{FieldCity, "City", 10},
}

// Columns returns the table columns, leaving out ID when hideID is set.
func Columns(hideID bool) []Column {
	out := make([]Column, 0, len(allColumns))
	for _, col := range allColumns {
		if hideID && col.Key == FieldID {
			continue
		}
		out = append(out, col)
	}
	return out
}

// Value renders the cell for rec in this column.
func (c Column) Value(rec Record) string {
	switch c.Key {
	case FieldID:
		return rec.ID
	case FieldName:
		return rec.Name
	case FieldTrips:
		return strconv.Itoa(rec.Trips)
	case FieldGender:
		return rec.Gender
	case FieldCity:
		return rec.City
	default:
		return ""
	}
}

// View owns the table state: the canonical record set, the filter, and the
// ID column toggle. The visible page is always derived, never stored.
type View struct {
	records []Record
	filter  Filter
	hideID  bool
}

// NewView returns an empty view with the default filter. A non-positive
// pageSize uses DefaultPageSize.
func NewView(pageSize int) View {
	f := DefaultFilter()
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	return View{filter: f}
}

// Load replaces the canonical set. The filter is left as is.
func (v *View) Load(records []Record) {
	v.records = cloneRecords(records)
}

// Records returns a copy of the canonical set.
func (v View) Records() []Record {
	return cloneRecords(v.records)
}

// Filter returns the current filter state.
func (v View) Filter() Filter {
	return v.filter
}

// SetSearch sets the search text and returns to page 1.
func (v *View) SetSearch(search string) {
	v.filter.Search = search
	v.filter.Page = 1
}

// SetCategory sets the category and returns to page 1.
func (v *View) SetCategory(category string) {
	v.filter.Category = category
	v.filter.Page = 1
}

// GoToPage moves to page, keeping search and category.
func (v *View) GoToPage(page int) {
	v.filter.Page = page
}

// SetPageSize changes the page size and returns to page 1. Non-positive
// sizes are ignored.
func (v *View) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	v.filter.PageSize = size
	v.filter.Page = 1
}

// ToggleIDColumn flips ID column visibility.
func (v *View) ToggleIDColumn() {
	v.hideID = !v.hideID
}

// IDColumnHidden reports whether the ID column is hidden.
func (v View) IDColumnHidden() bool {
	return v.hideID
}

// Columns returns the columns to render.
func (v View) Columns() []Column {
	return Columns(v.hideID)
}

// Visible computes the current page from the canonical set and filter.
func (v View) Visible() Result {
	return Apply(v.records, v.filter)
}

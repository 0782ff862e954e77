package roster

import (
	"reflect"
	"testing"
)

func TestNewView_Defaults(t *testing.T) {
	v := NewView(0)
	f := v.Filter()
	if f.Search != "" || f.Category != CategoryUnset || f.Page != 1 || f.PageSize != DefaultPageSize {
		t.Fatalf("default filter = %+v", f)
	}
	if v.IDColumnHidden() {
		t.Fatalf("ID column hidden by default")
	}
	res := v.Visible()
	if len(res.Rows) != 0 || res.Total != 0 {
		t.Fatalf("empty view visible = %+v, want nothing", res)
	}

	if got := NewView(20).Filter().PageSize; got != 20 {
		t.Fatalf("NewView(20) page size = %d, want 20", got)
	}
}

func TestView_HandlersResetOrKeepPage(t *testing.T) {
	v := NewView(5)
	v.Load(tenRecords(t))

	v.GoToPage(2)
	if got := trips(v.Visible().Rows); !reflect.DeepEqual(got, []int{6, 7, 8, 9, 10}) {
		t.Fatalf("page 2 = %v, want 6..10", got)
	}

	v.SetSearch("City")
	if v.Filter().Page != 1 {
		t.Fatalf("SetSearch kept page %d, want 1", v.Filter().Page)
	}

	v.GoToPage(2)
	v.SetCategory(CategoryMale)
	if v.Filter().Page != 1 || v.Filter().Search != "City" {
		t.Fatalf("SetCategory filter = %+v, want page 1 and search kept", v.Filter())
	}

	v.GoToPage(3)
	if f := v.Filter(); f.Search != "City" || f.Category != CategoryMale {
		t.Fatalf("GoToPage dropped search/category: %+v", f)
	}

	v.SetPageSize(10)
	if f := v.Filter(); f.Page != 1 || f.PageSize != 10 {
		t.Fatalf("SetPageSize filter = %+v, want page 1 size 10", f)
	}
	v.SetPageSize(0)
	if v.Filter().PageSize != 10 {
		t.Fatalf("SetPageSize(0) changed size to %d", v.Filter().PageSize)
	}
}

func TestView_PageTwoReachableAfterFiltering(t *testing.T) {
	v := NewView(5)
	v.Load(tenRecords(t))
	v.SetSearch("city")

	first := v.Visible()
	if first.TotalPages() != 2 {
		t.Fatalf("TotalPages = %d, want 2 (total from unsliced matches)", first.TotalPages())
	}
	v.GoToPage(2)
	if got := trips(v.Visible().Rows); !reflect.DeepEqual(got, []int{6, 7, 8, 9, 10}) {
		t.Fatalf("page 2 = %v, want 6..10", got)
	}
}

func TestView_VisibleTracksFilterAfterLoad(t *testing.T) {
	v := NewView(5)
	v.SetCategory(CategoryFemale)
	v.Load(tenRecords(t))

	if got := trips(v.Visible().Rows); !reflect.DeepEqual(got, []int{2, 4, 6, 8, 10}) {
		t.Fatalf("visible = %v, want female rows", got)
	}
}

func TestView_LoadCopiesRecords(t *testing.T) {
	records := tenRecords(t)
	v := NewView(5)
	v.Load(records)
	records[0].Name = "mutated"
	if v.Records()[0].Name == "mutated" {
		t.Fatalf("View shares the caller's slice")
	}
}

func TestView_ToggleIDColumnTwiceRestoresColumns(t *testing.T) {
	v := NewView(5)
	original := v.Columns()
	if len(original) != 5 || original[0].Key != FieldID {
		t.Fatalf("columns = %+v, want 5 starting with id", original)
	}

	v.ToggleIDColumn()
	hidden := v.Columns()
	if len(hidden) != 4 || hidden[0].Key != FieldName {
		t.Fatalf("hidden columns = %+v, want 4 starting with name", hidden)
	}

	v.ToggleIDColumn()
	if !reflect.DeepEqual(v.Columns(), original) {
		t.Fatalf("columns after two toggles = %+v, want %+v", v.Columns(), original)
	}
}

func TestColumnValue(t *testing.T) {
	rec := Record{ID: "9", Name: "Ann", Trips: 4, Gender: CategoryFemale, City: CityB}
	var got []string
	for _, col := range Columns(false) {
		got = append(got, col.Value(rec))
	}
	want := []string{"9", "Ann", "4", "Female", "City B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if (Column{Key: "other"}).Value(rec) != "" {
		t.Fatalf("unknown column should render empty")
	}
}

func TestCategoryCycling(t *testing.T) {
	order := []string{CategoryUnset, CategoryShowAll, CategoryMale, CategoryFemale}
	for i, value := range order {
		next := order[(i+1)%len(order)]
		if got := NextCategory(value); got != next {
			t.Fatalf("NextCategory(%q) = %q, want %q", value, got, next)
		}
		if got := PrevCategory(next); got != value {
			t.Fatalf("PrevCategory(%q) = %q, want %q", next, got, value)
		}
	}
	if got := NextCategory("bogus"); got != CategoryUnset {
		t.Fatalf("NextCategory(bogus) = %q, want %q", got, CategoryUnset)
	}
	if CategoryLabel(CategoryShowAll) != "Show All" {
		t.Fatalf("CategoryLabel(showall) = %q", CategoryLabel(CategoryShowAll))
	}
	if len(Categories()) != 4 {
		t.Fatalf("Categories() = %v, want 4 options", Categories())
	}
}

func TestNextPageSize(t *testing.T) {
	cases := map[int]int{5: 10, 10: 20, 20: 50, 50: 5, 7: 10, 100: 5}
	for in, want := range cases {
		if got := NextPageSize(in); got != want {
			t.Fatalf("NextPageSize(%d) = %d, want %d", in, got, want)
		}
	}
}

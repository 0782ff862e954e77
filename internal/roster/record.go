package roster

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/five82/tripdesk/internal/users"
)

// Derived field names. Pass-through fields with these names are dropped so the
// derived values win.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldTrips  = "trips"
	FieldGender = "gender"
	FieldCity   = "city"
)

// Category values for the gender select. Unset and ShowAll are distinct
// sentinels and both mean "no category filtering".
const (
	CategoryUnset   = "Filter"
	CategoryShowAll = "showall"
	CategoryMale    = "Male"
	CategoryFemale  = "Female"
)

// City values assigned by Derive.
const (
	CityA = "City A"
	CityB = "City B"
)

// Record is one user row: the source identity plus synthetic fields.
type Record struct {
	ID     string
	Name   string
	Trips  int
	Gender string
	City   string
	Extra  map[string]any
}

// Derive turns fetched users into records. Trips, gender, and city are
// assigned from the position in the list.
func Derive(list []users.User) []Record {
	if len(list) == 0 {
		return nil
	}
	out := make([]Record, len(list))
	for i, u := range list {
		extra := u.DecodeFields()
		delete(extra, FieldTrips)
		delete(extra, FieldGender)
		delete(extra, FieldCity)
		if len(extra) == 0 {
			extra = nil
		}

		rec := Record{
			ID:     u.ID,
			Name:   u.Name,
			Trips:  i + 1,
			Gender: CategoryMale,
			City:   CityA,
			Extra:  extra,
		}
		if i%2 == 1 {
			rec.Gender = CategoryFemale
			rec.City = CityB
		}
		out[i] = rec
	}
	return out
}

// Texts returns the string form of every field value. Nested objects and
// arrays contribute their leaf values; nulls contribute nothing.
func (r Record) Texts() []string {
	texts := []string{r.ID, r.Name, strconv.Itoa(r.Trips), r.Gender, r.City}

	keys := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		texts = appendLeaves(texts, r.Extra[k])
	}
	return texts
}

func appendLeaves(dst []string, v any) []string {
	switch val := v.(type) {
	case nil:
		return dst
	case string:
		return append(dst, val)
	case json.Number:
		return append(dst, val.String())
	case bool:
		return append(dst, strconv.FormatBool(val))
	case float64:
		return append(dst, strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		return append(dst, strconv.Itoa(val))
	case []any:
		for _, item := range val {
			dst = appendLeaves(dst, item)
		}
		return dst
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = appendLeaves(dst, val[k])
		}
		return dst
	default:
		return dst
	}
}

func cloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}

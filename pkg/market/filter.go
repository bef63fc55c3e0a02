package market

import "strings"

// Filter narrows a record set. Empty fields match everything; set fields
// are combined with AND.
type Filter struct {
	Category string // exact category, "" or "all" for any
	Search   string // case-insensitive substring over crop or location
}

func (f Filter) IsZero() bool {
	return (f.Category == "" || f.Category == "all") && f.Search == ""
}

// Apply returns the records satisfying the filter, preserving order.
// It is pure: same inputs, same output, source untouched.
func Apply(records []PriceRecord, f Filter) []PriceRecord {
	out := make([]PriceRecord, 0, len(records))
	for _, r := range records {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r PriceRecord, f Filter) bool {
	if f.Category != "" && f.Category != "all" && !strings.EqualFold(string(r.Category), f.Category) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Crop), needle) &&
			!strings.Contains(strings.ToLower(r.Location), needle) {
			return false
		}
	}
	return true
}

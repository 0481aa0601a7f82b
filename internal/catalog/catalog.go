// Package catalog filters and orders static content collections
// (careers, media items, stories, resources) by a user query.
package catalog

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// All is the permissive value for category and audience filters.
const All = "all"

// SortKey selects the order of a filtered collection.
type SortKey string

const (
	SortNone        SortKey = ""
	SortName        SortKey = "name"
	SortNumericDesc SortKey = "numeric_desc"
)

// Fields are the parts of a record the catalog can match and order on.
type Fields struct {
	ID          int
	Title       string
	Description string
	Tags        []string
	Category    string
	Numeric     string // number embedded in text, e.g. "15,000,000 - 25,000,000 VNĐ"
	Audience    string // empty or "all" means the record fits every audience
}

// Record is implemented by every entity that can be listed through the catalog.
type Record interface {
	CatalogFields() Fields
}

// Query is the transient set of filter and sort parameters.
type Query struct {
	SearchText string
	Category   string
	Audience   string
	Sort       SortKey
}

// DefaultQuery matches everything and orders by title.
func DefaultQuery() Query {
	return Query{Category: All, Audience: All, Sort: SortName}
}

// IsDefault reports whether the query filters nothing.
func (q Query) IsDefault() bool {
	return strings.TrimSpace(q.SearchText) == "" && isAll(q.Category) && isAll(q.Audience)
}

// ParseSortKey maps user input to a sort key, falling back to SortName.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "salary", "numeric", "numeric_desc", "numericdesc":
		return SortNumericDesc
	default:
		return SortName
	}
}

// FilterAndSort returns the records matching q in the order q asks for.
// The input slice is left untouched.
func FilterAndSort[T Record](records []T, q Query) []T {
	needle := fold(strings.TrimSpace(q.SearchText))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r.CatalogFields(), q.Category, q.Audience, needle) {
			out = append(out, r)
		}
	}

	switch q.Sort {
	case SortName:
		// A collator keeps internal buffers, so each call gets its own.
		c := collate.New(language.Vietnamese)
		slices.SortStableFunc(out, func(a, b T) int {
			return c.CompareString(a.CatalogFields().Title, b.CatalogFields().Title)
		})
	case SortNumericDesc:
		slices.SortStableFunc(out, func(a, b T) int {
			na, nb := NumericValue(a.CatalogFields().Numeric), NumericValue(b.CatalogFields().Numeric)
			switch {
			case na > nb:
				return -1
			case na < nb:
				return 1
			}
			return 0
		})
	}

	return out
}

// Matches reports whether f passes the category, audience and search filters.
// needle must already be folded.
func Matches(f Fields, category, audience, needle string) bool {
	if !isAll(category) && f.Category != category {
		return false
	}
	if !isAll(audience) && !isAll(f.Audience) && f.Audience != audience {
		return false
	}
	if needle == "" {
		return true
	}
	if strings.Contains(fold(f.Title), needle) || strings.Contains(fold(f.Description), needle) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(fold(tag), needle) {
			return true
		}
	}
	return false
}

// NumericValue strips every non-digit from s and parses the rest.
// Text without digits, or too long to fit an int64, yields 0.
func NumericValue(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Count returns how many records fall into each category.
func Count[T Record](records []T) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.CatalogFields().Category]++
	}
	return counts
}

func isAll(s string) bool {
	return s == "" || s == All
}

// fold case-folds s in NFC so precomposed and combining Vietnamese
// diacritics compare equal.
func fold(s string) string {
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}

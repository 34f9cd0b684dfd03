package service

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied by Query.
type SortKey string

const (
	SortQualityDesc    SortKey = "quality_desc"
	SortQualityAsc     SortKey = "quality_asc"
	SortResponsesDesc  SortKey = "responses_desc"
	SortStrictnessDesc SortKey = "strict_desc"
	SortStrictnessAsc  SortKey = "strict_asc"
	SortNameAsc        SortKey = "name_asc"
)

// SortKeys lists every recognised key in display order.
var SortKeys = []SortKey{
	SortQualityDesc,
	SortQualityAsc,
	SortResponsesDesc,
	SortStrictnessDesc,
	SortStrictnessAsc,
	SortNameAsc,
}

// Valid reports whether k is a recognised sort key.
func (k SortKey) Valid() bool {
	return slices.Contains(SortKeys, k)
}

// Query filters aggregates by a case-insensitive name substring and orders
// them by sortKey. The input slice is not modified. Sorting is stable and an
// unknown key keeps the filtered order.
func Query(aggs []ProfessorAggregate, search string, sortKey SortKey) []ProfessorAggregate {
	out := make([]ProfessorAggregate, 0, len(aggs))

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(search))
	for _, a := range aggs {
		if needle == "" || strings.Contains(fold.String(a.Name), needle) {
			out = append(out, a)
		}
	}

	if compare := comparator(sortKey); compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

func comparator(key SortKey) func(a, b ProfessorAggregate) int {
	switch key {
	case SortQualityDesc:
		return func(a, b ProfessorAggregate) int { return compareMissingLast(a.AvgQuality, b.AvgQuality, true) }
	case SortQualityAsc:
		return func(a, b ProfessorAggregate) int { return compareMissingLast(a.AvgQuality, b.AvgQuality, false) }
	case SortResponsesDesc:
		return func(a, b ProfessorAggregate) int { return cmp.Compare(b.Count, a.Count) }
	case SortStrictnessDesc:
		return func(a, b ProfessorAggregate) int { return compareMissingLast(a.AvgStrictness, b.AvgStrictness, true) }
	case SortStrictnessAsc:
		return func(a, b ProfessorAggregate) int { return compareMissingLast(a.AvgStrictness, b.AvgStrictness, false) }
	case SortNameAsc:
		coll := collate.New(language.English)
		return func(a, b ProfessorAggregate) int { return coll.CompareString(a.Name, b.Name) }
	default:
		return nil
	}
}

// compareMissingLast orders present values before nil ones in either direction.
func compareMissingLast(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return cmp.Compare(*b, *a)
	default:
		return cmp.Compare(*a, *b)
	}
}

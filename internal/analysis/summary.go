package analysis

import (
	"sort"

	"baselinedash/domain/baseline"
	"baselinedash/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the four dashboard aggregates over a filtered
// table. An empty table is the explicit no-data terminal state: it
// returns core.ErrEmptyResult so callers show guidance instead of
// attempting means over an empty set.
func Summarize(filtered baseline.Table) (*baseline.Summary, error) {
	if filtered.IsEmpty() {
		return nil, core.ErrEmptyResult
	}

	return &baseline.Summary{
		KPIs:        computeKPIs(filtered),
		PerSubject:  groupMeans(filtered, func(r baseline.Row) string { return r.Subject }),
		PerCategory: categoryShares(filtered),
		PerState:    groupMeans(filtered, func(r baseline.Row) string { return r.State }),
	}, nil
}

// computeKPIs returns the headline metrics: total filtered row count,
// per-year mean Obtained Marks, and their delta. A year with no rows
// yields a nil mean; the delta exists only when both means do.
func computeKPIs(filtered baseline.Table) baseline.KPIs {
	byYear := make(map[baseline.AcademicYear][]float64, 2)
	for _, row := range filtered {
		byYear[row.AcademicYear] = append(byYear[row.AcademicYear], row.ObtainedMarks)
	}

	kpis := baseline.KPIs{TotalAssessments: filtered.Len()}
	kpis.Mean2425 = meanOrNil(byYear[baseline.Year2425])
	kpis.Mean2526 = meanOrNil(byYear[baseline.Year2526])

	if kpis.Mean2425 != nil && kpis.Mean2526 != nil {
		delta := *kpis.Mean2526 - *kpis.Mean2425
		kpis.Delta = &delta
	}
	return kpis
}

// meanOrNil computes the arithmetic mean, or nil for an empty group.
// stats.Mean errors on empty input, which is exactly the undefined case.
func meanOrNil(marks []float64) *float64 {
	mean, err := stats.Mean(stats.Float64Data(marks))
	if err != nil {
		return nil
	}
	return &mean
}

type groupKey struct {
	key  string
	year baseline.AcademicYear
}

// groupMeans computes mean Obtained Marks grouped by (keyOf(row), year).
// Only groups that actually occur in the filtered data appear; output
// is ordered by key, then year ascending.
func groupMeans(filtered baseline.Table, keyOf func(baseline.Row) string) []baseline.GroupMean {
	groups := make(map[groupKey][]float64)
	for _, row := range filtered {
		k := groupKey{key: keyOf(row), year: row.AcademicYear}
		groups[k] = append(groups[k], row.ObtainedMarks)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].key != keys[j].key {
			return keys[i].key < keys[j].key
		}
		return keys[i].year < keys[j].year
	})

	result := make([]baseline.GroupMean, 0, len(keys))
	for _, k := range keys {
		result = append(result, baseline.GroupMean{
			Key:  k.key,
			Year: k.year,
			Mean: stat.Mean(groups[k], nil),
		})
	}
	return result
}

// categoryShares counts rows by (year, category) and converts each
// count to a percentage of its year's total, so the shares within one
// year sum to 100 independently of the other year. The stored value is
// the full-precision ratio; rounding is cosmetic and happens at
// presentation time.
func categoryShares(filtered baseline.Table) []baseline.CategoryShare {
	type yearCat struct {
		year     baseline.AcademicYear
		category string
	}

	counts := make(map[yearCat]int)
	yearTotals := make(map[baseline.AcademicYear]int)
	for _, row := range filtered {
		counts[yearCat{year: row.AcademicYear, category: row.Category}]++
		yearTotals[row.AcademicYear]++
	}

	keys := make([]yearCat, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].category < keys[j].category
	})

	result := make([]baseline.CategoryShare, 0, len(keys))
	for _, k := range keys {
		count := counts[k]
		result = append(result, baseline.CategoryShare{
			Year:       k.year,
			Category:   k.category,
			Count:      count,
			Percentage: float64(count) / float64(yearTotals[k.year]) * 100,
		})
	}
	return result
}

// Package analysis applies filter criteria to the unified table and
// computes the dashboard aggregates over the filtered view.
package analysis

import (
	"sort"

	"baselinedash/domain/baseline"
)

// Filter returns the rows passing every column criterion. Column
// predicates are AND-combined; values within one column's allow-list
// are OR-combined. Unconstrained criteria return the table unchanged.
func Filter(table baseline.Table, criteria baseline.Criteria) baseline.Table {
	if criteria.IsUnconstrained() {
		return table
	}

	filtered := make(baseline.Table, 0, len(table))
	for _, row := range table {
		if criteria.Matches(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Options derives the candidate values for one filterable column:
// distinct non-empty values, sorted ascending. It is a pure function of
// the current table and must be recomputed whenever the table changes;
// the presentation layer prepends its own wildcard entry.
func Options(table baseline.Table, column string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range table {
		value, ok := row.Value(column)
		if !ok {
			break
		}
		if value != "" && !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}

// AllOptions derives the candidate values for every filterable column.
func AllOptions(table baseline.Table) map[string][]string {
	options := make(map[string][]string, len(baseline.FilterColumns()))
	for _, column := range baseline.FilterColumns() {
		options[column] = Options(table, column)
	}
	return options
}

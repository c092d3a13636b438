// Package dataset builds the unified assessment table from the two
// yearly exports: schema reconciliation, provenance tagging, projection
// to the common column set, value normalization, and concatenation.
package dataset

import (
	"strconv"
	"strings"

	"baselinedash/adapters/excel"
	"baselinedash/domain/baseline"
	"baselinedash/domain/core"
)

// Merge combines the two yearly exports into one unified table.
// sourceA is the AY 24-25 sheet, sourceB the AY 25-26 sheet; every row
// is tagged with its source's fixed year literal. sourceB's rows are
// appended after sourceA's, each source's internal order preserved.
// A broken source fails the whole merge; there is no partial output.
func Merge(sourceA, sourceB *excel.Sheet) (baseline.Table, error) {
	rowsA, err := projectSource(sourceA, baseline.Year2425)
	if err != nil {
		return nil, err
	}
	rowsB, err := projectSource(sourceB, baseline.Year2526)
	if err != nil {
		return nil, err
	}

	table := make(baseline.Table, 0, len(rowsA)+len(rowsB))
	table = append(table, rowsA...)
	table = append(table, rowsB...)
	return table, nil
}

// projectSource validates one sheet's schema and converts its rows into
// normalized domain rows tagged with the given year.
func projectSource(sheet *excel.Sheet, year baseline.AcademicYear) ([]baseline.Row, error) {
	categoryCol, missing := reconcileColumns(sheet)
	if len(missing) > 0 {
		return nil, core.NewMissingColumnsError(sheet.Source, missing)
	}

	rows := make([]baseline.Row, 0, len(sheet.Rows))
	for i, raw := range sheet.Rows {
		// Sheet rows are 0-based data rows; report the spreadsheet
		// row number (header is row 1).
		rowNum := i + 2

		total, err := parseMarks(sheet.Source, baseline.ColTotal, rowNum, raw[baseline.ColTotal])
		if err != nil {
			return nil, err
		}
		obtained, err := parseMarks(sheet.Source, baseline.ColObtained, rowNum, raw[baseline.ColObtained])
		if err != nil {
			return nil, err
		}

		rows = append(rows, baseline.Row{
			State:         strings.TrimSpace(raw[baseline.ColState]),
			CentreName:    strings.TrimSpace(raw[baseline.ColCentre]),
			Donor:         strings.TrimSpace(raw[baseline.ColDonor]),
			Subject:       strings.TrimSpace(raw[baseline.ColSubject]),
			Grade:         NormalizeGrade(raw[baseline.ColGrade]),
			TotalMarks:    total,
			ObtainedMarks: obtained,
			Category:      strings.TrimSpace(raw[categoryCol]),
			AcademicYear:  year,
		})
	}
	return rows, nil
}

// reconcileColumns resolves the Rubrics/Category naming difference and
// reports which required columns are still absent afterwards. The
// AY 24-25 export names the performance band "Rubrics"; it is read as
// Category. When a sheet carries both, Category wins.
func reconcileColumns(sheet *excel.Sheet) (categoryCol string, missing []string) {
	categoryCol = baseline.ColCategory
	if !sheet.HasColumn(baseline.ColCategory) && sheet.HasColumn(baseline.ColRubrics) {
		categoryCol = baseline.ColRubrics
	}

	for _, col := range baseline.RequiredColumns() {
		want := col
		if col == baseline.ColCategory {
			want = categoryCol
		}
		if !sheet.HasColumn(want) {
			missing = append(missing, col)
		}
	}
	return categoryCol, missing
}

// NormalizeGrade coerces a grade cell to its canonical string form:
// whitespace trimmed, with a literal trailing ".0" stripped so numeric
// grade codes read identically whether the export stored them as
// integers or floats. Values that do not end in exactly ".0" (such as
// "3A" or "3.5") pass through unchanged.
func NormalizeGrade(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), ".0")
}

// parseMarks parses a required numeric cell. Unparseable marks are a
// schema error naming the source, row, and column.
func parseMarks(source, column string, rowNum int, value string) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, core.NewBadCellError(source, column, rowNum, value)
	}
	marks, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, core.NewBadCellError(source, column, rowNum, value)
	}
	return marks, nil
}

// Package testkit builds in-memory workbook fixtures for tests. The
// fixtures mirror the real exports: the AY 24-25 sheet names its
// performance band column "Rubrics" and stores grades as floats, the
// AY 25-26 sheet uses "Category" and integer-like grades.
package testkit

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook creates an .xlsx with one named sheet filled from rows,
// the first row being the header.
func BuildWorkbook(sheetName string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Sheet2425 is the sheet name of the AY 24-25 fixture.
const Sheet2425 = "BaseLine-AY2425"

// Sheet2526 is the sheet name of the AY 25-26 fixture.
const Sheet2526 = "BL-Data"

// Sample2425 builds the AY 24-25 fixture: Rubrics column, float grade
// codes, and an extra column the merger must drop.
func Sample2425() ([]byte, error) {
	return BuildWorkbook(Sheet2425, [][]interface{}{
		{"State", "Centre Name", "Donor", "Subject", "Grade", "Total Marks", "Obtained Marks", "Rubrics", "Remarks"},
		{"Kaduna", "Centre A", "Donor X", "Math", "3.0", 100, 50, "Emerging", "ok"},
		{"Kaduna", "Centre A", "Donor X", "English", "3.0", 100, 60, "Developing", ""},
		{"Lagos", "Centre B", "Donor Y", "Math", "4.0", 100, 40, "Emerging", "resit"},
	})
}

// Sample2526 builds the AY 25-26 fixture: Category column, grades
// already integer-like.
func Sample2526() ([]byte, error) {
	return BuildWorkbook(Sheet2526, [][]interface{}{
		{"State", "Centre Name", "Donor", "Subject", "Grade", "Total Marks", "Obtained Marks", "Category"},
		{"Kaduna", "Centre A", "Donor X", "Math", "3", 100, 70, "Proficient"},
		{"Lagos", "Centre B", "Donor Y", "Math", "4", 100, 65, "Developing"},
	})
}

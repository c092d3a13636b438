package dataset

import (
	"testing"

	"baselinedash/adapters/excel"
	"baselinedash/domain/baseline"
	"baselinedash/domain/core"
)

func sheet2425() *excel.Sheet {
	return &excel.Sheet{
		Source:  "EL-BL-Data-AY-24-25.xlsx",
		Name:    "BaseLine-AY2425",
		Headers: []string{"State", "Centre Name", "Donor", "Subject", "Grade", "Total Marks", "Obtained Marks", "Rubrics", "Remarks"},
		Rows: []excel.RawRow{
			{"State": "Kaduna", "Centre Name": "Centre A", "Donor": "Donor X", "Subject": "Math", "Grade": "3.0", "Total Marks": "100", "Obtained Marks": "50", "Rubrics": "Emerging", "Remarks": "ok"},
			{"State": "Lagos", "Centre Name": "Centre B", "Donor": "Donor Y", "Subject": "English", "Grade": "4.0", "Total Marks": "100", "Obtained Marks": "60", "Rubrics": "Developing", "Remarks": ""},
		},
	}
}

func sheet2526() *excel.Sheet {
	return &excel.Sheet{
		Source:  "BaseLine_Data_25-26YMR.xlsx",
		Name:    "BL-Data",
		Headers: []string{"State", "Centre Name", "Donor", "Subject", "Grade", "Total Marks", "Obtained Marks", "Category"},
		Rows: []excel.RawRow{
			{"State": "Kaduna", "Centre Name": "Centre A", "Donor": "Donor X", "Subject": "Math", "Grade": "3", "Total Marks": "100", "Obtained Marks": "70", "Category": "Proficient"},
		},
	}
}

func TestMerge_RowCountAndOrder(t *testing.T) {
	a, b := sheet2425(), sheet2526()

	table, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if table.Len() != len(a.Rows)+len(b.Rows) {
		t.Fatalf("merged row count = %d, want %d", table.Len(), len(a.Rows)+len(b.Rows))
	}

	// sourceA rows first, internal order preserved, then sourceB rows
	if table[0].Subject != "Math" || table[1].Subject != "English" || table[2].AcademicYear != baseline.Year2526 {
		t.Errorf("concatenation order violated: %+v", table)
	}
}

func TestMerge_YearTagsMatchSource(t *testing.T) {
	table, err := Merge(sheet2425(), sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	for i, row := range table {
		want := baseline.Year2425
		if i >= 2 {
			want = baseline.Year2526
		}
		if row.AcademicYear != want {
			t.Errorf("row %d tagged %q, want %q", i, row.AcademicYear, want)
		}
	}
}

func TestMerge_RubricsReadAsCategory(t *testing.T) {
	table, err := Merge(sheet2425(), sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if table[0].Category != "Emerging" {
		t.Errorf("Rubrics value not reconciled into Category: got %q", table[0].Category)
	}
	if table[2].Category != "Proficient" {
		t.Errorf("Category value lost: got %q", table[2].Category)
	}
}

func TestMerge_MissingColumnIsSchemaError(t *testing.T) {
	broken := sheet2526()
	broken.Headers = []string{"State", "Centre Name", "Donor", "Subject", "Grade", "Total Marks", "Obtained Marks"}

	_, err := Merge(sheet2425(), broken)
	if err == nil {
		t.Fatal("expected schema error for missing Category column")
	}
	if !core.IsSchemaError(err) {
		t.Errorf("error should be a schema error, got: %v", err)
	}
}

func TestMerge_BadMarksIsSchemaError(t *testing.T) {
	broken := sheet2526()
	broken.Rows[0]["Obtained Marks"] = "seventy"

	_, err := Merge(sheet2425(), broken)
	if !core.IsSchemaError(err) {
		t.Errorf("non-numeric marks should be a schema error, got: %v", err)
	}
}

func TestMerge_NumericCoercion(t *testing.T) {
	table, err := Merge(sheet2425(), sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if table[0].TotalMarks != 100 || table[0].ObtainedMarks != 50 {
		t.Errorf("marks not parsed: %+v", table[0])
	}
}

func TestNormalizeGrade(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"3.0", "3"},
		{"3", "3"},       // idempotent on normalized input
		{"3A", "3A"},     // non-numeric suffix passes through
		{"3.5", "3.5"},   // only a literal ".0" is stripped
		{"3.00", "3.00"}, // ".00" is not ".0"
		{" 4.0 ", "4"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeGrade(tc.in); got != tc.want {
			t.Errorf("NormalizeGrade(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// Idempotence: a second pass never changes the value.
	for _, tc := range cases {
		once := NormalizeGrade(tc.in)
		if twice := NormalizeGrade(once); twice != once {
			t.Errorf("NormalizeGrade not idempotent for %q: %q -> %q", tc.in, once, twice)
		}
	}
}

func TestMerge_TrimsStringColumns(t *testing.T) {
	a := sheet2425()
	a.Rows[0]["State"] = "  Kaduna "
	a.Rows[0]["Subject"] = " Math"

	table, err := Merge(a, sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if table[0].State != "Kaduna" || table[0].Subject != "Math" {
		t.Errorf("whitespace not trimmed: %+v", table[0])
	}
}

func TestMerge_Deterministic(t *testing.T) {
	t1, err := Merge(sheet2425(), sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	t2, err := Merge(sheet2425(), sheet2526())
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if t1.Len() != t2.Len() {
		t.Fatalf("repeated merges differ in length: %d vs %d", t1.Len(), t2.Len())
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Errorf("row %d differs between identical merges", i)
		}
	}
}

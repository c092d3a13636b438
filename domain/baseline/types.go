// Package baseline defines the domain model for the two-year baseline
// assessment comparison: the unified row set produced by merging the
// AY 24-25 and AY 25-26 exports, the filter criteria applied to it, and
// the summary shapes handed to the presentation layer.
package baseline

// AcademicYear tags which of the two source uploads a row came from.
// Tags are fixed literals assigned during the merge, never inferred
// from row contents.
type AcademicYear string

const (
	Year2425 AcademicYear = "AY 24-25"
	Year2526 AcademicYear = "AY 25-26"
)

// Years lists the two tags in chronological order.
func Years() []AcademicYear {
	return []AcademicYear{Year2425, Year2526}
}

// Column names as they appear in the source sheets.
const (
	ColState    = "State"
	ColCentre   = "Centre Name"
	ColDonor    = "Donor"
	ColSubject  = "Subject"
	ColGrade    = "Grade"
	ColTotal    = "Total Marks"
	ColObtained = "Obtained Marks"
	ColCategory = "Category"
	ColYear     = "Academic Year"

	// ColRubrics is the AY 24-25 export's name for the Category column.
	// The merger renames it before projection.
	ColRubrics = "Rubrics"
)

// RequiredColumns are the columns every source must expose after the
// Rubrics/Category reconciliation.
func RequiredColumns() []string {
	return []string{ColState, ColCentre, ColDonor, ColSubject, ColGrade, ColTotal, ColObtained, ColCategory}
}

// FilterColumns are the columns the dashboard exposes as multi-select
// filters, in display order.
func FilterColumns() []string {
	return []string{ColState, ColCentre, ColDonor, ColSubject, ColGrade}
}

// Row is one scored assessment record from either academic year.
type Row struct {
	State         string       `json:"state"`
	CentreName    string       `json:"centreName"`
	Donor         string       `json:"donor"`
	Subject       string       `json:"subject"`
	Grade         string       `json:"grade"`
	TotalMarks    float64      `json:"totalMarks"`
	ObtainedMarks float64      `json:"obtainedMarks"`
	Category      string       `json:"category"`
	AcademicYear  AcademicYear `json:"academicYear"`
}

// Value returns the row's value for a filterable column name.
// The second return is false for columns that are not filterable.
func (r Row) Value(column string) (string, bool) {
	switch column {
	case ColState:
		return r.State, true
	case ColCentre:
		return r.CentreName, true
	case ColDonor:
		return r.Donor, true
	case ColSubject:
		return r.Subject, true
	case ColGrade:
		return r.Grade, true
	}
	return "", false
}

// Table is the unified, ordered row set: sourceA's rows followed by
// sourceB's rows, each source's internal order preserved. Treated as an
// immutable value once built.
type Table []Row

// Len returns the number of rows.
func (t Table) Len() int { return len(t) }

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool { return len(t) == 0 }

package baseline

// KPIs are the scalar headline metrics for the filtered table. The
// mean fields are nil when their year group is empty; Delta is defined
// only when both means are, and is nil otherwise rather than zero.
type KPIs struct {
	TotalAssessments int      `json:"totalAssessments"`
	Mean2425         *float64 `json:"mean2425"`
	Mean2526         *float64 `json:"mean2526"`
	Delta            *float64 `json:"delta"`
}

// GroupMean is the mean Obtained Marks for one (group key, year) pair.
// Used for both the per-subject and per-state aggregates. Groups with
// no rows are simply absent, never zero-filled.
type GroupMean struct {
	Key  string       `json:"key"`
	Year AcademicYear `json:"year"`
	Mean float64      `json:"mean"`
}

// CategoryShare is the share of one performance category within one
// academic year. Percentage is the full-precision ratio times 100;
// rounding is left to presentation. Shares within a year sum to 100.
type CategoryShare struct {
	Year       AcademicYear `json:"year"`
	Category   string       `json:"category"`
	Count      int          `json:"count"`
	Percentage float64      `json:"percentage"`
}

// Summary bundles the four aggregates computed from a non-empty
// filtered table. Recomputed on every criteria change, never persisted.
type Summary struct {
	KPIs        KPIs            `json:"kpis"`
	PerSubject  []GroupMean     `json:"perSubject"`
	PerCategory []CategoryShare `json:"perCategory"`
	PerState    []GroupMean     `json:"perState"`
}

package baseline

// Criterion selects values for one filterable column. It is a tagged
// variant: either every value passes, or only members of an explicit
// allow-list do. The wildcard is carried in the tag, not as a magic
// string mixed into the value set, so a literal "All" appearing in the
// data cannot collide with it.
type Criterion struct {
	all     bool
	allowed map[string]bool
}

// AllValues returns the criterion that passes every value. It is the
// default for a column with no selection.
func AllValues() Criterion {
	return Criterion{all: true}
}

// SpecificValues returns a criterion passing only the given values.
// An empty list passes nothing.
func SpecificValues(values ...string) Criterion {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return Criterion{allowed: allowed}
}

// IsAll reports whether the criterion is the wildcard variant.
func (c Criterion) IsAll() bool { return c.all }

// Matches reports whether a value passes the criterion.
func (c Criterion) Matches(value string) bool {
	if c.all {
		return true
	}
	return c.allowed[value]
}

// Criteria maps filterable column names to criteria. A column with no
// entry is unconstrained, equivalent to AllValues. Column predicates
// are AND-combined; values within one column's allow-list are
// OR-combined.
type Criteria map[string]Criterion

// Matches reports whether a row passes every column criterion.
func (c Criteria) Matches(row Row) bool {
	for column, criterion := range c {
		if criterion.IsAll() {
			continue
		}
		value, ok := row.Value(column)
		if !ok {
			continue
		}
		if !criterion.Matches(value) {
			return false
		}
	}
	return true
}

// IsUnconstrained reports whether no column carries an explicit
// allow-list, i.e. filtering is the identity.
func (c Criteria) IsUnconstrained() bool {
	for _, criterion := range c {
		if !criterion.IsAll() {
			return false
		}
	}
	return true
}

package excel

// RawRow represents a row of raw sheet data as header-keyed string values
type RawRow map[string]string

// Sheet represents one named sheet read from a workbook
type Sheet struct {
	Source  string   // Display name of the originating file
	Name    string   // Sheet name inside the workbook
	Headers []string // Column headers, whitespace-trimmed
	Rows    []RawRow // Data rows
}

// HasColumn reports whether the sheet exposes a header.
func (s *Sheet) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

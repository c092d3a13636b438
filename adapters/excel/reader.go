// Package excel reads named workbook sheets into header-keyed string
// rows. It is the only layer that touches spreadsheet files; everything
// downstream works on the tabular values it produces.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"baselinedash/domain/core"

	"github.com/xuri/excelize/v2"
)

// SheetReader reads one named sheet from a workbook stream.
type SheetReader struct {
	source string // display name used in error messages, typically the upload filename
}

// NewSheetReader creates a reader for a workbook identified by source.
func NewSheetReader(source string) *SheetReader {
	return &SheetReader{source: source}
}

// Read parses the workbook from r and extracts the named sheet.
// A workbook that cannot be opened or lacks the sheet is a source-read
// failure; no partial recovery is attempted.
func (r *SheetReader) Read(src io.Reader, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, core.NewSourceReadError(r.source, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, core.NewMissingSheetError(r.source, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, core.NewSourceReadError(r.source, err)
	}
	if len(rows) < 2 {
		return nil, core.NewSourceReadError(r.source,
			fmt.Errorf("sheet %q must have at least a header row and one data row", sheetName))
	}

	return r.processRows(sheetName, rows), nil
}

// ReadBytes is a convenience wrapper over Read for in-memory uploads.
func (r *SheetReader) ReadBytes(data []byte, sheetName string) (*Sheet, error) {
	return r.Read(bytes.NewReader(data), sheetName)
}

// processRows converts raw string rows into the Sheet format
func (r *SheetReader) processRows(sheetName string, rows [][]string) *Sheet {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		rowData := make(RawRow, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &Sheet{
		Source:  r.source,
		Name:    sheetName,
		Headers: headers,
		Rows:    dataRows,
	}
}

// isBlank reports whether every cell in the row is empty. Exports
// commonly carry trailing blank rows; they are skipped, not errors.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

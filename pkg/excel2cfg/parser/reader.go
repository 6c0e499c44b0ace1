package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is the read-only view of a worksheet the parser works on.
// Row and column indexes are 1-based.
type Sheet interface {
	// Name returns the sheet display name.
	Name() string
	// ActualRowCount returns the number of rows holding at least one value.
	ActualRowCount() int
	// ActualCellCount returns the number of cells holding a value in row.
	ActualCellCount(row int) int
	// Cell returns the raw cell at (row, col).
	Cell(row, col int) models.RawCell
}

// Worksheet is a Sheet backed by an excelize workbook.
type Worksheet struct {
	f        *excelize.File
	name     string
	rows     [][]string
	date1904 bool
}

// NewWorksheet loads the value grid of sheetName from f.
func NewWorksheet(f *excelize.File, sheetName string) (*Worksheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	ws := &Worksheet{f: f, name: sheetName, rows: rows}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		ws.date1904 = *props.Date1904
	}
	return ws, nil
}

// Name returns the sheet display name.
func (ws *Worksheet) Name() string {
	return ws.name
}

// ActualRowCount returns the number of rows holding at least one value.
func (ws *Worksheet) ActualRowCount() int {
	count := 0
	for _, row := range ws.rows {
		if countNonEmpty(row) > 0 {
			count++
		}
	}
	return count
}

// ActualCellCount returns the number of cells holding a value in row.
func (ws *Worksheet) ActualCellCount(row int) int {
	if row < 1 || row > len(ws.rows) {
		return 0
	}
	return countNonEmpty(ws.rows[row-1])
}

// countNonEmpty counts non-empty cells of a row.
func countNonEmpty(row []string) int {
	count := 0
	for _, cell := range row {
		if cell != "" {
			count++
		}
	}
	return count
}

// Cell returns the raw cell at (row, col), classifying its native kind.
// Lookup failures read as an empty cell.
func (ws *Worksheet) Cell(row, col int) models.RawCell {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.RawCell{}
	}

	formula, _ := ws.f.GetCellFormula(ws.name, axis)
	value, err := ws.f.GetCellValue(ws.name, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.RawCell{}
	}
	if value == "" && formula == "" {
		return models.RawCell{}
	}

	if ok, _, err := ws.f.GetCellHyperLink(ws.name, axis); err == nil && ok {
		display, _ := ws.f.GetCellValue(ws.name, axis)
		return models.RawCell{Kind: models.CellHyperlink, Text: display}
	}

	cellType, _ := ws.f.GetCellType(ws.name, axis)
	if formula != "" {
		if value == "" {
			// No cached result; evaluate it ourselves
			value, _ = ws.f.CalcCellValue(ws.name, axis, excelize.Options{RawCellValue: true})
		}
		if isNumberType(cellType) {
			value = numberText(value)
		}
		return models.RawCell{Kind: models.CellFormula, Text: value}
	}

	if runs, err := ws.f.GetCellRichText(ws.name, axis); err == nil && isRichText(runs) {
		texts := make([]string, len(runs))
		for i, r := range runs {
			texts[i] = r.Text
		}
		return models.RawCell{Kind: models.CellRichText, Runs: texts}
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.RawCell{Kind: models.CellPlain, Text: boolText(value)}
	case excelize.CellTypeDate:
		if t, ok := parseISODate(value); ok {
			return models.RawCell{Kind: models.CellDate, Time: t}
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if ws.hasDateFormat(axis) {
			if serial, err := strconv.ParseFloat(value, 64); err == nil {
				if t, err := excelize.ExcelDateToTime(serial, ws.date1904); err == nil {
					return models.RawCell{Kind: models.CellDate, Time: t}
				}
			}
		}
		value = numberText(value)
	}
	return models.RawCell{Kind: models.CellPlain, Text: value}
}

// isNumberType reports whether cells of type t store a number in <v>.
func isNumberType(t excelize.CellType) bool {
	return t == excelize.CellTypeNumber || t == excelize.CellTypeUnset
}

// numberText renders a stored number the way it prints as a value, so
// "0.59999999999999998" reads as "0.6". Non-numeric text is returned as is.
func numberText(raw string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return models.FormatNumber(f)
}

// isRichText reports whether runs carry formatting. Plain strings come
// back as a single unformatted run.
func isRichText(runs []excelize.RichTextRun) bool {
	return len(runs) > 1 || (len(runs) == 1 && runs[0].Font != nil)
}

// hasDateFormat reports whether the cell's number format renders a date or time.
func (ws *Worksheet) hasDateFormat(axis string) bool {
	idx, err := ws.f.GetCellStyle(ws.name, axis)
	if err != nil || idx == 0 {
		return false
	}
	style, err := ws.f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat reports whether a built-in number format id is a date/time format.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains
// date or time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'y', r == 'm', r == 'd', r == 'h', r == 's':
			return true
		}
	}
	return false
}

// parseISODate parses the value of an ISO 8601 typed date cell.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// boolText renders a boolean cell the way its value prints.
func boolText(raw string) string {
	switch raw {
	case "1", "TRUE", "true":
		return "true"
	case "0", "FALSE", "false":
		return "false"
	}
	return raw
}

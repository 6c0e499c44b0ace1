package parser

// Header rows of the sheet convention (1-based). Row 1 is reserved.
const (
	RowFieldNames = 2
	RowFieldTypes = 3
	RowVisibility = 4
	FirstDataRow  = 5
)

// ColumnCount returns the number of contiguous non-empty cells of the
// visibility header row, starting at column 1.
func ColumnCount(s Sheet) int {
	limit := s.ActualCellCount(RowVisibility)
	for col := 1; col <= limit; col++ {
		if isEmpty(s.Cell(RowVisibility, col)) {
			return col - 1
		}
	}
	return limit
}

// RowCount returns the index of the last row of the contiguous run of
// non-empty first-column cells starting at row 1, clipped to the number
// of rows the sheet reports.
func RowCount(s Sheet) int {
	limit := s.ActualRowCount()
	n := 0
	for n <= limit {
		if isEmpty(s.Cell(n+1, 1)) {
			break
		}
		n++
	}
	return min(limit, n)
}

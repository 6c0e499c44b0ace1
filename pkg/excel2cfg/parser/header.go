package parser

import (
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// IgnoreFieldName is the sentinel field name of the row-exclusion column.
const IgnoreFieldName = ".ignore"

// ReadHeader decodes the name, type and visibility header rows for
// columns 1..columnCount.
func ReadHeader(s Sheet, columnCount int) []models.FieldDescriptor {
	fields := make([]models.FieldDescriptor, 0, columnCount)
	for col := 1; col <= columnCount; col++ {
		fields = append(fields, models.FieldDescriptor{
			Column:     col,
			Name:       headerText(s, RowFieldNames, col),
			Type:       headerText(s, RowFieldTypes, col),
			Visibility: models.ParseVisibility(headerText(s, RowVisibility, col)),
		})
	}
	return fields
}

func headerText(s Sheet, row, col int) string {
	return NormalizeCell(s.Cell(row, col), "string").Text
}

// IgnoreColumn returns the 1-based column of the .ignore field, or 0 if
// the sheet has none. When several columns carry the name, the last wins.
func IgnoreColumn(fields []models.FieldDescriptor) int {
	col := 0
	for _, f := range fields {
		if f.Name == IgnoreFieldName {
			col = f.Column
		}
	}
	return col
}

// UnrecognizedColumns returns the fields whose visibility keyword matched
// no known policy.
func UnrecognizedColumns(fields []models.FieldDescriptor) []models.FieldDescriptor {
	var out []models.FieldDescriptor
	for _, f := range fields {
		if f.Visibility == models.VisibilityUnrecognized {
			out = append(out, f)
		}
	}
	return out
}

package parser

import (
	"strings"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// truthy lists the .ignore values that exclude a row, compared lower-cased.
var truthy = map[string]bool{
	"yes":  true,
	"1":    true,
	"true": true,
}

// ExtractRecords builds the record set of data rows FirstDataRow..rowCount.
// Rows flagged in the .ignore column are dropped; each remaining row keeps
// the columns visible to role, in column order.
func ExtractRecords(s Sheet, fields []models.FieldDescriptor, rowCount int, role models.Role) models.RecordSet {
	ignoreCol := IgnoreColumn(fields)

	var rs models.RecordSet
	for row := FirstDataRow; row <= rowCount; row++ {
		if ignoreCol > 0 && isIgnored(s.Cell(row, ignoreCol)) {
			continue
		}

		var rec models.Record
		for _, f := range fields {
			if f.Column == ignoreCol || !f.Visibility.VisibleTo(role) {
				continue
			}
			rec.Fields = append(rec.Fields, models.Field{
				Name: f.Name,
				Type: f.Type,
				Val:  NormalizeCell(s.Cell(row, f.Column), f.Type),
			})
		}
		rs.Records = append(rs.Records, rec)
	}
	return rs
}

func isIgnored(cell models.RawCell) bool {
	v := NormalizeCell(cell, "string").Text
	return truthy[strings.ToLower(v)]
}

// Package output renders record sets into artifacts and writes them to disk.
package output

import (
	"bytes"
	"html"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// EncodeJSON renders a record set in the canonical array-of-objects format.
// Numeric fields are emitted unquoted; every other value is emitted as a
// string literal as-is, relying on quotes having been escaped upstream.
func EncodeJSON(rs models.RecordSet) []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, rec := range rs.Records {
		buf.WriteString("    {\n")
		for j, f := range rec.Fields {
			buf.WriteString(`        "`)
			buf.WriteString(html.EscapeString(f.Name))
			buf.WriteString(`": `)
			if f.IsStringType() {
				buf.WriteByte('"')
				buf.WriteString(f.Val.String())
				buf.WriteByte('"')
			} else {
				buf.WriteString(f.Val.String())
			}
			if j < len(rec.Fields)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("    }")
		if i < len(rs.Records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes()
}

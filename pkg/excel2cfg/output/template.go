package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// TemplateExt is the file extension of custom format templates.
const TemplateExt = ".tmpl"

// ErrTemplateNotFound indicates no template file exists for a format.
var ErrTemplateNotFound = errors.New("template not found")

// Row is one record as seen by a template.
type Row struct {
	Cells []models.Field
}

// Document is the data context handed to a custom format template.
type Document struct {
	// Sheet is the full sheet name.
	Sheet string
	// BaseName is the artifact base name.
	BaseName string
	// Prefix is the artifact name prefix of the workbook.
	Prefix string
	// Format is the format being rendered.
	Format string
	// Rows holds the records in source row order.
	Rows []Row
}

// NewDocument builds the template context of a record set.
func NewDocument(id models.SheetIdentity, prefix, format string, rs models.RecordSet) Document {
	doc := Document{
		Sheet:    id.Name,
		BaseName: id.BaseName,
		Prefix:   prefix,
		Format:   format,
		Rows:     make([]Row, len(rs.Records)),
	}
	for i, rec := range rs.Records {
		doc.Rows[i] = Row{Cells: rec.Fields}
	}
	return doc
}

// Renderer materializes a document in a custom format.
type Renderer interface {
	Render(format string, doc Document) ([]byte, error)
}

// TemplateRenderer renders formats from <Dir>/<format>.tmpl text templates.
type TemplateRenderer struct {
	Dir string
}

var templateFuncs = template.FuncMap{
	"add":   func(a, b int) int { return a + b },
	"last":  func(i, n int) bool { return i == n-1 },
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"quote": func(s string) string { return `"` + s + `"` },
}

// Render executes the template of format against doc.
func (r TemplateRenderer) Render(format string, doc Document) ([]byte, error) {
	path := filepath.Join(r.Dir, format+TemplateExt)
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, err
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(templateFuncs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

package excel2cfg

import (
	"sync"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/output"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/parser"
)

// converter carries the per-workbook state shared by its sheets.
type converter struct {
	bookName string
	relDir   string
	prefix   string
	opts     Options
	log      Logger
	renderer output.Renderer
}

// handleSheet runs the sheet pipeline: extents, header, role gate, row
// extraction, then one artifact per requested format.
func (c *converter) handleSheet(s parser.Sheet) models.SheetReport {
	name := s.Name()
	report := models.SheetReport{
		Name:    name,
		Columns: parser.ColumnCount(s),
		Rows:    parser.RowCount(s),
	}
	c.log.Log("processing sheet",
		"file", c.bookName,
		"sheet", c.prefix+"_"+name,
		"rows", report.Rows,
		"columns", report.Columns)

	if report.Columns <= 0 {
		report.Err = &SheetError{BookName: c.bookName, SheetName: name, Stage: "extent", Err: ErrNoColumns}
		c.log.Log("sheet has no data", "file", c.bookName, "sheet", name, "error", report.Err)
		return report
	}
	if report.Rows < 0 {
		report.Err = &SheetError{BookName: c.bookName, SheetName: name, Stage: "extent", Err: ErrNoRows}
		c.log.Log("sheet has no header", "file", c.bookName, "sheet", name, "error", report.Err)
		return report
	}

	fields := parser.ReadHeader(s, report.Columns)
	for _, f := range parser.UnrecognizedColumns(fields) {
		c.log.Log("unrecognized output type, column excluded",
			"file", c.bookName, "sheet", name, "column", f.Column, "field", f.Name)
	}

	id := parser.ParseSheetName(name)
	if ok, reason := parser.CheckRole(id, fields, c.opts.Role); !ok {
		report.Skipped = true
		report.Reason = reason
		c.log.Log("sheet skipped", "file", c.bookName, "sheet", name, "role", c.opts.Role, "reason", reason)
		return report
	}

	rs := parser.ExtractRecords(s, fields, report.Rows, c.opts.Role)
	report.Records = rs.Len()
	report.Outputs = c.dispatch(id, rs, parser.OutputFormats(id))
	return report
}

// dispatch renders every format concurrently and returns the results in
// format order.
func (c *converter) dispatch(id models.SheetIdentity, rs models.RecordSet, formats []string) []models.OutputResult {
	perFormat := make([][]models.OutputResult, len(formats))

	var wg sync.WaitGroup
	for i, format := range formats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			perFormat[i] = c.emit(id, rs, format)
		}()
	}
	wg.Wait()

	var results []models.OutputResult
	for _, r := range perFormat {
		results = append(results, r...)
	}
	return results
}

// emit renders one format and writes it under every output root.
func (c *converter) emit(id models.SheetIdentity, rs models.RecordSet, format string) []models.OutputResult {
	var content []byte
	if format == parser.FormatJSON {
		content = output.EncodeJSON(rs)
	} else {
		var err error
		content, err = c.renderer.Render(format, output.NewDocument(id, c.prefix, format, rs))
		if err != nil {
			oerr := &OutputError{SheetName: id.Name, Format: format, Err: err}
			c.log.Log("render failed", "file", c.bookName, "sheet", id.Name, "format", format, "error", oerr)
			return []models.OutputResult{{Format: format, Err: oerr}}
		}
	}

	fileName := output.ArtifactName(c.prefix, id.BaseName, format)
	results := output.WriteArtifact(c.opts.OutputDirs, c.relDir, fileName, format, content)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			r.Err = &OutputError{SheetName: id.Name, Format: format, Dir: r.Dir, Err: r.Err}
			c.log.Log("write failed", "file", c.bookName, "sheet", id.Name, "path", r.Path, "error", r.Err)
			continue
		}
		c.log.Log("wrote artifact", "sheet", id.Name, "path", r.Path)
	}
	return results
}

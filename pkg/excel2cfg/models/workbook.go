package models

// OutputResult reports one artifact write to one output root.
type OutputResult struct {
	// Format is the output format identifier (e.g. json, lua).
	Format string `json:"format"`
	// Dir is the output root the artifact was written under.
	Dir string `json:"dir,omitempty"`
	// Path is the artifact path (empty if rendering failed).
	Path string `json:"path,omitempty"`
	// Err is the render or write failure, if any.
	Err error `json:"-"`
}

// SheetReport summarizes the processing of one sheet.
type SheetReport struct {
	// Name is the sheet display name.
	Name string `json:"name"`
	// Columns is the detected column count.
	Columns int `json:"columns"`
	// Rows is the detected row count, header rows included.
	Rows int `json:"rows"`
	// Records is the number of records extracted.
	Records int `json:"records"`
	// Skipped is set when the sheet produced no output by rule.
	Skipped bool `json:"skipped,omitempty"`
	// Reason explains a skip.
	Reason string `json:"reason,omitempty"`
	// Err is a sheet data error.
	Err error `json:"-"`
	// Outputs lists every render and write attempt.
	Outputs []OutputResult `json:"outputs,omitempty"`
}

// Failed reports whether the sheet or any of its outputs failed.
func (s *SheetReport) Failed() bool {
	if s.Err != nil {
		return true
	}
	for _, o := range s.Outputs {
		if o.Err != nil {
			return true
		}
	}
	return false
}

// WorkbookReport summarizes the conversion of one workbook file.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// RelativePath is the workbook path relative to the source directory.
	RelativePath string `json:"relative_path"`
	// Prefix is the artifact name prefix derived from the file name.
	Prefix string `json:"prefix"`
	// Sheets lists reports in workbook order.
	Sheets []SheetReport `json:"sheets"`
}

// Failed reports whether any sheet of the workbook failed.
func (w *WorkbookReport) Failed() bool {
	for i := range w.Sheets {
		if w.Sheets[i].Failed() {
			return true
		}
	}
	return false
}

package excel2cfg

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not an .xlsx workbook.
var ErrInvalidFormat = errors.New("not an xlsx file")

// ErrNoOutputDirs indicates no output root was configured.
var ErrNoOutputDirs = errors.New("no output directories configured")

// ErrNoColumns indicates the visibility header row is empty.
var ErrNoColumns = errors.New("no columns")

// ErrNoRows indicates the sheet has a negative row extent.
var ErrNoRows = errors.New("no header rows")

// SheetError represents a data error that stopped processing of one sheet.
type SheetError struct {
	BookName  string
	SheetName string
	Stage     string // "load", "extent", "header"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q of %s (%s): %v", e.SheetName, e.BookName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// OutputError represents a failed render or write of one artifact.
type OutputError struct {
	SheetName string
	Format    string
	Dir       string
	Err       error
}

func (e *OutputError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("render %s for sheet %q: %v", e.Format, e.SheetName, e.Err)
	}
	return fmt.Sprintf("write %s for sheet %q under %s: %v", e.Format, e.SheetName, e.Dir, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Package models defines the data structures shared by the parser and output stages.
package models

import "time"

// CellKind is the native kind of a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellPlain
	CellHyperlink
	CellFormula
	CellRichText
	CellDate
)

// RawCell is a cell as read from the workbook, before normalization.
type RawCell struct {
	// Kind selects which of the other fields is meaningful.
	Kind CellKind
	// Text is the plain value, the hyperlink display text, or the formula result.
	Text string
	// Runs holds the text runs of a rich text cell.
	Runs []string
	// Time is the value of a date cell.
	Time time.Time
}

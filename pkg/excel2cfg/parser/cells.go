// Package parser interprets the header convention and data rows of a sheet.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// DateLayout is the layout date cells are rendered with.
const DateLayout = "2006-01-02 15:04:05"

// NormalizeCell converts a raw cell to the canonical value for a field of
// the given declared type. Numeric types yield numbers (NaN when the text
// does not parse); all other types yield text with double quotes escaped.
func NormalizeCell(cell models.RawCell, declaredType string) models.Value {
	text := cellText(cell)
	if models.IsNumericType(declaredType) {
		return models.NumberValue(parseNumber(text))
	}
	return models.StringValue(strings.ReplaceAll(text, `"`, `\"`))
}

// cellText returns the canonical text of a cell, never failing.
func cellText(cell models.RawCell) string {
	switch cell.Kind {
	case models.CellEmpty:
		return ""
	case models.CellHyperlink, models.CellFormula:
		return cell.Text
	case models.CellRichText:
		return strings.Join(cell.Runs, "")
	case models.CellDate:
		return cell.Time.Format(DateLayout)
	}
	return strings.TrimSpace(cell.Text)
}

// isEmpty reports whether a cell normalizes to the empty string.
func isEmpty(cell models.RawCell) bool {
	return cellText(cell) == ""
}

// parseNumber converts text to a number the way a spreadsheet-to-JSON
// pipeline expects: blank is 0, radix prefixes and Infinity are accepted,
// anything else that does not parse is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Try radix-prefixed integers first
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.ContainsRune(s[2:], '_') {
				return math.NaN()
			}
			if i, err := strconv.ParseUint(s[2:], base, 64); err == nil {
				return float64(i)
			}
			return math.NaN()
		}
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// Reject the spellings strconv accepts but a decimal literal does not
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return math.NaN()
		}
	}

	// Try float
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

package models

import (
	"math"
	"strconv"
)

// Value is a normalized cell value: a number for numeric fields, text otherwise.
type Value struct {
	Text    string
	Num     float64
	Numeric bool
}

// StringValue returns a text Value.
func StringValue(s string) Value {
	return Value{Text: s}
}

// NumberValue returns a numeric Value. NaN is allowed.
func NumberValue(f float64) Value {
	return Value{Num: f, Numeric: true}
}

// String renders the value as it appears in generated artifacts.
// Numbers print the way JavaScript prints them (1, 1.5, NaN, Infinity).
func (v Value) String() string {
	if !v.Numeric {
		return v.Text
	}
	return FormatNumber(v.Num)
}

// FormatNumber formats f with the shortest round-tripping representation,
// switching to exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits; JavaScript does not.
		for i := 0; i < len(s); i++ {
			if s[i] == 'e' && i+2 < len(s) && s[i+2] == '0' && i+3 < len(s) {
				return s[:i+2] + s[i+3:]
			}
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Field is one emitted column of a record.
type Field struct {
	Name string
	Type string
	Val  Value
}

// IsNumberType reports whether the field was declared numeric.
func (f Field) IsNumberType() bool {
	return IsNumericType(f.Type)
}

// IsStringType reports whether the field is emitted as a string literal.
func (f Field) IsStringType() bool {
	return !f.IsNumberType()
}

// Record is one data row restricted to the fields visible to a role.
type Record struct {
	Fields []Field
}

// RecordSet holds the records of one sheet in source row order.
type RecordSet struct {
	Records []Record
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

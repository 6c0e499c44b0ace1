package models

// FieldDescriptor describes one column of a sheet as declared by the header rows.
type FieldDescriptor struct {
	// Column is the 1-based column index.
	Column int `json:"column"`
	// Name is the field name from header row 2.
	Name string `json:"name"`
	// Type is the declared type from header row 3.
	Type string `json:"type"`
	// Visibility is the output policy from header row 4.
	Visibility Visibility `json:"visibility"`
}

// IsNumericType reports whether the declared type belongs to the numeric vocabulary.
func IsNumericType(typ string) bool {
	return typ == "int" || typ == "long"
}

// IsNumeric reports whether values of this field are coerced to numbers.
func (d FieldDescriptor) IsNumeric() bool {
	return IsNumericType(d.Type)
}

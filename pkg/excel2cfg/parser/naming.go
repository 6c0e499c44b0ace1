package parser

import (
	"strings"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

const (
	// FormatJSON is the canonical structured output format.
	FormatJSON = "json"
	// ModeClient marks a sheet as client-only.
	ModeClient = "c"
	// ModeServer marks a sheet as server-only.
	ModeServer = "s"
	// EndSheetName stops processing of the remaining sheets of a workbook.
	EndSheetName = "end"
	// CommentPrefix marks a sheet that is never processed.
	CommentPrefix = "#"
)

// ParseSheetName splits a dotted sheet name into its base name and mode tokens.
func ParseSheetName(name string) models.SheetIdentity {
	tokens := strings.Split(name, ".")
	base := tokens[len(tokens)-1]
	for i := len(tokens) - 1; base == "" && i >= 0; i-- {
		base = tokens[i]
	}
	if base == "" {
		base = name
	}

	id := models.SheetIdentity{Name: name, BaseName: base}
	for _, t := range tokens {
		if t == "" || t == base || id.HasMode(t) {
			continue
		}
		id.ModeTokens = append(id.ModeTokens, t)
	}
	return id
}

// OutputFormats returns the output formats requested by a sheet name.
// Server-only sheets only ever produce the canonical format; client-only
// sheets produce it only when no custom format is named.
func OutputFormats(id models.SheetIdentity) []string {
	justClient := id.HasMode(ModeClient)
	justServer := id.HasMode(ModeServer)

	var formats []string
	if !justServer {
		for _, t := range id.ModeTokens {
			if t != ModeClient && t != ModeServer {
				formats = append(formats, t)
			}
		}
	}

	if !justClient || len(formats) == 0 {
		for _, f := range formats {
			if f == FormatJSON {
				return formats
			}
		}
		formats = append(formats, FormatJSON)
	}
	return formats
}

// CheckRole decides whether a sheet applies to role at all. The name test
// is a plain substring match on the full sheet name.
func CheckRole(id models.SheetIdentity, fields []models.FieldDescriptor, role models.Role) (bool, string) {
	switch role {
	case models.RoleServer:
		if strings.Contains(id.Name, ModeClient+".") {
			return false, "sheet name marks it client-only"
		}
		if !anyVisibleTo(fields, role) {
			return false, "no field is visible to SERVER"
		}
	case models.RoleClient:
		if strings.Contains(id.Name, ModeServer+".") {
			return false, "sheet name marks it server-only"
		}
		if !anyVisibleTo(fields, role) {
			return false, "no field is visible to CLIENT"
		}
	}
	return true, ""
}

// anyVisibleTo reports whether some column is All or dedicated to role.
func anyVisibleTo(fields []models.FieldDescriptor, role models.Role) bool {
	for _, f := range fields {
		switch f.Visibility {
		case models.VisibilityAll:
			return true
		case models.VisibilityServerOnly:
			if role == models.RoleServer {
				return true
			}
		case models.VisibilityClientOnly:
			if role == models.RoleClient {
				return true
			}
		}
	}
	return false
}

package models

// Visibility is the per-column output policy decoded from header row 4.
type Visibility int

const (
	// VisibilityUnrecognized marks a keyword that matched no known policy.
	// Such columns are excluded for every role.
	VisibilityUnrecognized Visibility = iota
	// VisibilityIgnore excludes the column from every role.
	VisibilityIgnore
	// VisibilityClientOnly emits the column for client builds only.
	VisibilityClientOnly
	// VisibilityServerOnly emits the column for server builds only.
	VisibilityServerOnly
	// VisibilityAll emits the column for every role.
	VisibilityAll
)

var visibilityKeywords = map[string]Visibility{
	"IGNORE":     VisibilityIgnore,
	"CLIENT":     VisibilityClientOnly,
	"SERVER":     VisibilityServerOnly,
	"ALL":        VisibilityAll,
	"Ignore":     VisibilityIgnore,
	"ClientOnly": VisibilityClientOnly,
	"ServerOnly": VisibilityServerOnly,
	"All":        VisibilityAll,
}

// ParseVisibility maps a header keyword to its Visibility. Matching is
// exact; unknown keywords yield VisibilityUnrecognized.
func ParseVisibility(keyword string) Visibility {
	if v, ok := visibilityKeywords[keyword]; ok {
		return v
	}
	return VisibilityUnrecognized
}

func (v Visibility) String() string {
	switch v {
	case VisibilityIgnore:
		return "Ignore"
	case VisibilityClientOnly:
		return "ClientOnly"
	case VisibilityServerOnly:
		return "ServerOnly"
	case VisibilityAll:
		return "All"
	}
	return "Unrecognized"
}

// VisibleTo reports whether a column with this policy is emitted for role.
func (v Visibility) VisibleTo(role Role) bool {
	switch v {
	case VisibilityAll:
		return true
	case VisibilityClientOnly:
		return role != RoleServer
	case VisibilityServerOnly:
		return role != RoleClient
	}
	return false
}

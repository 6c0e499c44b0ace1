package models

// SheetIdentity is a sheet name split into its dotted components.
type SheetIdentity struct {
	// Name is the full sheet display name.
	Name string `json:"name"`
	// BaseName is the last dotted token; it names the output artifact.
	BaseName string `json:"base_name"`
	// ModeTokens are the remaining distinct tokens in first-seen order.
	ModeTokens []string `json:"mode_tokens,omitempty"`
}

// HasMode reports whether token is one of the sheet's mode tokens.
func (s SheetIdentity) HasMode(token string) bool {
	for _, t := range s.ModeTokens {
		if t == token {
			return true
		}
	}
	return false
}

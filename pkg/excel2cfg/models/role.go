package models

import (
	"fmt"
	"strings"
)

// Role is the build target a conversion runs for.
type Role int

const (
	// RoleClient keeps client-visible columns and skips server-only sheets.
	RoleClient Role = iota
	// RoleServer keeps server-visible columns and skips client-only sheets.
	RoleServer
	// RoleOther applies no role filtering.
	RoleOther
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "CLIENT"
	case RoleServer:
		return "SERVER"
	case RoleOther:
		return "OTHER"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole parses a role name, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client", "c":
		return RoleClient, nil
	case "server", "s":
		return RoleServer, nil
	case "other", "all":
		return RoleOther, nil
	}
	return 0, fmt.Errorf("invalid role: %s (must be client, server, or other)", s)
}

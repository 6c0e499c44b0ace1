// Package excel2cfg converts spreadsheet workbooks into client and server
// configuration artifacts.
package excel2cfg

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/output"
)

const (
	// SettingDir is the per-user settings directory, relative to home.
	SettingDir = ".dTools"
	// TemplateDirName is the template directory inside SettingDir.
	TemplateDirName = "templates"
)

// Options configures a conversion.
type Options struct {
	// Role selects which sheets and columns are emitted.
	Role models.Role
	// OutputDirs are the output roots every artifact is written under.
	OutputDirs []string
	// TemplateDir holds <format>.tmpl files for custom formats.
	// If empty, DefaultTemplateDir is used.
	TemplateDir string
	// Renderer overrides the template renderer for custom formats.
	// If nil, a TemplateRenderer on TemplateDir is used.
	Renderer output.Renderer
	// Logger receives progress and per-sheet diagnostics.
	// If nil, nothing is logged.
	Logger Logger
}

// DefaultTemplateDir returns ~/.dTools/templates.
func DefaultTemplateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(SettingDir, TemplateDirName)
	}
	return filepath.Join(home, SettingDir, TemplateDirName)
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NopLogger{}
}

func (o Options) renderer() output.Renderer {
	if o.Renderer != nil {
		return o.Renderer
	}
	dir := o.TemplateDir
	if dir == "" {
		dir = DefaultTemplateDir()
	}
	return output.TemplateRenderer{Dir: dir}
}

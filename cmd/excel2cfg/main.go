// Package main provides the CLI entry point for excel2cfg.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

var (
	configFile  string
	role        string
	configDir   string
	outputDirs  []string
	templateDir string
	quiet       bool
	logJSON     bool
	summary     bool
)

// errFailures reports that the conversion ran but some sheet or output failed.
var errFailures = errors.New("conversion finished with failures")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excel2cfg [workbook.xlsx]",
		Short: "Convert spreadsheet workbooks into client/server config files",
		Long: `excel2cfg reads .xlsx workbooks laid out with a 4-row header
(row 2 field names, row 3 field types, row 4 output types) and writes one
config artifact per sheet and output format, filtered for a client or
server build.

Without a workbook argument every .xlsx below --config-dir is converted.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.Flags().StringVarP(&role, "role", "r", "server", "Build role: client, server, or other")
	rootCmd.Flags().StringVarP(&configDir, "config-dir", "d", ".", "Directory holding the workbooks")
	rootCmd.Flags().StringArrayVarP(&outputDirs, "out", "o", nil, "Output root directory (repeatable)")
	rootCmd.Flags().StringVar(&templateDir, "template-dir", "", "Directory of <format>.tmpl templates (default: ~/.dTools/templates)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log failures")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a summary of written artifacts")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// Merge the config file under explicitly set flags
	if configFile != "" {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("role") && cfg.Role != "" {
			role = cfg.Role
		}
		if !flags.Changed("config-dir") && cfg.ConfigDir != "" {
			configDir = cfg.ConfigDir
		}
		if !flags.Changed("out") && len(cfg.Outputs) > 0 {
			outputDirs = cfg.Outputs
		}
		if !flags.Changed("template-dir") && cfg.TemplateDir != "" {
			templateDir = cfg.TemplateDir
		}
	}

	buildRole, err := models.ParseRole(role)
	if err != nil {
		return err
	}

	resolved := make([]string, len(outputDirs))
	for i, dir := range outputDirs {
		resolved[i] = expandHome(dir)
	}

	opts := excel2cfg.Options{
		Role:        buildRole,
		OutputDirs:  resolved,
		TemplateDir: expandHome(templateDir),
		Logger:      excel2cfg.NewSlogLogger(newLogger(cmd.ErrOrStderr())),
	}

	var reports []*models.WorkbookReport
	var convErr error
	if len(args) == 1 {
		var report *models.WorkbookReport
		report, convErr = excel2cfg.Convert(expandHome(configDir), args[0], opts)
		if report != nil {
			reports = append(reports, report)
		}
	} else {
		reports, convErr = excel2cfg.ConvertDir(expandHome(configDir), opts)
	}

	if summary {
		printSummary(cmd.OutOrStdout(), reports)
	}
	if convErr != nil {
		return fmt.Errorf("conversion failed: %w", convErr)
	}
	for _, r := range reports {
		if r.Failed() {
			return errFailures
		}
	}
	return nil
}

// newLogger builds the process logger. --quiet drops everything but failures.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if logJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func printSummary(w io.Writer, reports []*models.WorkbookReport) {
	for _, r := range reports {
		for _, s := range r.Sheets {
			switch {
			case s.Err != nil:
				fmt.Fprintf(w, "%s\t%s\terror: %v\n", r.RelativePath, s.Name, s.Err)
			case s.Skipped:
				fmt.Fprintf(w, "%s\t%s\tskipped: %s\n", r.RelativePath, s.Name, s.Reason)
			}
			for _, o := range s.Outputs {
				if o.Err != nil {
					fmt.Fprintf(w, "%s\t%s\t%s\terror: %v\n", r.RelativePath, s.Name, o.Format, o.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s (%d records)\n", r.RelativePath, s.Name, o.Format, o.Path, s.Records)
			}
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "excel2cfg.yaml")
	content := `role: client
config_dir: excel
outputs:
  - out/client
  - /abs/out
template_dir: tmpl
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Role != "client" {
		t.Errorf("Expected role client, got %q", cfg.Role)
	}
	if cfg.ConfigDir != filepath.Join(dir, "excel") {
		t.Errorf("Expected config dir relative to the file, got %q", cfg.ConfigDir)
	}
	if len(cfg.Outputs) != 2 || cfg.Outputs[0] != filepath.Join(dir, "out", "client") || cfg.Outputs[1] != "/abs/out" {
		t.Errorf("Unexpected outputs %v", cfg.Outputs)
	}
	if cfg.TemplateDir != filepath.Join(dir, "tmpl") {
		t.Errorf("Unexpected template dir %q", cfg.TemplateDir)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("outputs: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("expandHome(~/x) = %q", got)
	}
	if got := expandHome("rel/x"); got != "rel/x" {
		t.Errorf("expandHome(rel/x) = %q", got)
	}
}

func TestRunConvertsWorkbook(t *testing.T) {
	tmp := t.TempDir()
	excelDir := filepath.Join(tmp, "excel")
	outDir := filepath.Join(tmp, "out")

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "hero"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	rows := [][]interface{}{{"#"}, {"id"}, {"int"}, {"ALL"}, {7}}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		f.SetCellValue("hero", cell, row[0])
	}
	if err := os.MkdirAll(excelDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := f.SaveAs(filepath.Join(excelDir, "01_hero.xlsx")); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--role", "server", "-d", excelDir, "-o", outDir, "--summary", "01_hero.xlsx"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(outDir, "hero_hero.json"))
	if err != nil {
		t.Fatalf("Expected artifact: %v", err)
	}
	if string(data) != "[\n    {\n        \"id\": 7\n    }\n]\n" {
		t.Errorf("Unexpected artifact %q", data)
	}
	if !strings.Contains(stdout.String(), "hero_hero.json (1 records)") {
		t.Errorf("Expected summary line, got %q", stdout.String())
	}
}

func TestRunRejectsBadRole(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--role", "tester", "-o", t.TempDir()})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an invalid role error")
	}
}

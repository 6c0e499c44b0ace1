package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration file.
type fileConfig struct {
	Role        string   `yaml:"role"`
	ConfigDir   string   `yaml:"config_dir"`
	Outputs     []string `yaml:"outputs"`
	TemplateDir string   `yaml:"template_dir"`
}

// loadConfig reads a YAML configuration file. Relative paths inside it are
// resolved against the file's directory.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.ConfigDir = resolvePath(base, cfg.ConfigDir)
	cfg.TemplateDir = resolvePath(base, cfg.TemplateDir)
	for i, out := range cfg.Outputs {
		cfg.Outputs[i] = resolvePath(base, out)
	}
	return &cfg, nil
}

// resolvePath expands a leading ~ and makes relative paths relative to base.
func resolvePath(base, p string) string {
	p = expandHome(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// expandHome replaces a leading ~ with the user home directory.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Package config loads the optional boothmapper.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up next to the working directory.
const FileName = "boothmapper.yaml"

// Config represents the optional boothmapper.yaml configuration.
type Config struct {
	Export ExportConfig `yaml:"export"`
	Detect DetectConfig `yaml:"detect"`
	UI     UIConfig     `yaml:"ui"`
}

// ExportConfig controls export record generation.
type ExportConfig struct {
	// Targets is the set of destination ids every shape is exported against.
	Targets []string `yaml:"targets,omitempty"`
}

// DetectConfig controls booth candidate detection.
type DetectConfig struct {
	// MinArea is the smallest contour area (px²) accepted as a booth candidate.
	MinArea float64 `yaml:"min_area,omitempty"`
	// MaxArea is the largest accepted contour area; 0 means a tenth of the image.
	MaxArea float64 `yaml:"max_area,omitempty"`
}

// UIConfig holds view-layer defaults.
type UIConfig struct {
	DefaultTool string `yaml:"default_tool,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{Targets: []string{"map-main", "map-overview"}},
		Detect: DetectConfig{MinArea: 400},
		UI:     UIConfig{DefaultTool: "select"},
	}
}

// Load reads boothmapper.yaml from dir if present, falling back to defaults
// for the file and for any field left unset.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Export.Targets) == 0 {
		c.Export.Targets = def.Export.Targets
	}
	if c.Detect.MinArea <= 0 {
		c.Detect.MinArea = def.Detect.MinArea
	}
	if c.UI.DefaultTool == "" {
		c.UI.DefaultTool = def.UI.DefaultTool
	}
}

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config directory under $XDG_CONFIG_HOME.
const AppName = "trajectory-report"

// DefaultConfigFile is looked up relative to the working directory.
const DefaultConfigFile = "config/report.yaml"

var (
	// ErrConfigNotFound is returned when an explicit --config path does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	ErrEmptyInputPath = errors.New("invalid config: report.input_path is empty")
	ErrEmptyOutputDir = errors.New("invalid config: report.output_dir is empty")
	ErrInvalidDPI     = errors.New("invalid config: report.dpi must be positive")
	ErrInvalidSize    = errors.New("invalid config: chart sizes must be positive")
)

// ─── Report configs ─────────────────────────────────────────────────────

type ChartSizeConfig struct {
	WidthIn            float64 `yaml:"width_in"`
	HeightIn           float64 `yaml:"height_in"`
	TrajectoryHeightIn float64 `yaml:"trajectory_height_in"` // XY plot is taller
}

type ExportConfig struct {
	ErrorsCSV       bool `yaml:"errors_csv"`       // <output_dir>/erro_rastreamento.csv
	SummaryMarkdown bool `yaml:"summary_markdown"` // <output_dir>/resumo.md
	BufferSizeKB    int  `yaml:"buffer_size_kb"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ReportConfig is the top-level structure for report.yaml.
type ReportConfig struct {
	Report struct {
		InputPath string          `yaml:"input_path"`
		OutputDir string          `yaml:"output_dir"`
		DPI       int             `yaml:"dpi"`
		Size      ChartSizeConfig `yaml:"size"`
	} `yaml:"report"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// DefaultReportConfig returns the settings used when no file is found:
// data/saida.csv in, five PNGs to data/, matplotlib's default 100 DPI.
func DefaultReportConfig() *ReportConfig {
	var cfg ReportConfig
	cfg.Report.InputPath = filepath.Join("data", "saida.csv")
	cfg.Report.OutputDir = "data"
	cfg.Report.DPI = 100
	cfg.Report.Size = ChartSizeConfig{WidthIn: 8, HeightIn: 5, TrajectoryHeightIn: 6}
	cfg.Export.BufferSizeKB = 64
	cfg.Log.Level = "info"
	return &cfg
}

// Validate checks the fields every run depends on.
func (c *ReportConfig) Validate() error {
	switch {
	case c.Report.InputPath == "":
		return ErrEmptyInputPath
	case c.Report.OutputDir == "":
		return ErrEmptyOutputDir
	case c.Report.DPI <= 0:
		return ErrInvalidDPI
	case c.Report.Size.WidthIn <= 0 || c.Report.Size.HeightIn <= 0 || c.Report.Size.TrajectoryHeightIn <= 0:
		return ErrInvalidSize
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level: %w", err)
	}
	return nil
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadReportConfig reads report.yaml on top of DefaultReportConfig, so keys
// absent from the file keep their defaults.
func LoadReportConfig(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read report config: %w", err)
	}
	cfg := DefaultReportConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse report config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindReportConfig returns the config file to use, or "" for defaults:
//  1. explicit, when non-empty (returned even if missing so the load fails loudly)
//  2. config/report.yaml in the working directory
//  3. $XDG_CONFIG_HOME/trajectory-report/report.yaml
func FindReportConfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	userCfg := filepath.Join(xdg.ConfigHome, AppName, "report.yaml")
	if _, err := os.Stat(userCfg); err == nil {
		return userCfg
	}
	return ""
}

// ResolveReportConfig finds and loads the config, falling back to defaults.
func ResolveReportConfig(explicit string) (*ReportConfig, string, error) {
	path := FindReportConfig(explicit)
	if path == "" {
		return DefaultReportConfig(), "", nil
	}
	cfg, err := LoadReportConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

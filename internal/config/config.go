package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// ReportConfig controls the generated report document
type ReportConfig struct {
	Title      string `yaml:"title" envconfig:"TITLE" validate:"required"`
	PreparedBy string `yaml:"prepared_by" envconfig:"PREPARED_BY"`
	Currency   string `yaml:"currency" envconfig:"CURRENCY" validate:"len=3"`
	TopN       int    `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
}

// Default returns the built-in configuration. Defaults live here rather
// than in envconfig tags so that a YAML file can override them without
// a later env pass silently restoring the defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/salescli.log",
		},
		Paths: PathsConfig{
			OutputDir:  "output",
			ReportsDir: "output/reports",
			LogsDir:    "logs",
		},
		Report: ReportConfig{
			Title:      "Amazon Sales Performance Analysis Report",
			PreparedBy: "Sales Analytics",
			Currency:   "INR",
			TopN:       10,
		},
	}
}

// Load builds the configuration in three layers: built-in defaults,
// then the optional YAML file, then SALES_* environment variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("SALES", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg;
// keys absent from the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

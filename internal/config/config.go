package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Recorder   RecorderConfig   `yaml:"recorder"`
}

// SimulationConfig holds DCA simulation settings
type SimulationConfig struct {
	WeeklyBudget float64 `yaml:"weekly_budget"` // dollars invested per week
	TrailingDays int     `yaml:"trailing_days"` // analysis window in calendar days
	DateFormat   string  `yaml:"date_format"`   // "dd/mm/yyyy" or "mm/dd/yyyy"
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format string `yaml:"format"` // "table" or "json"
}

// RecorderConfig holds run-recorder settings
type RecorderConfig struct {
	Path string `yaml:"path"` // SQLite database path, empty disables recording
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			WeeklyBudget: 100,
			TrailingDays: 90,
			DateFormat:   "dd/mm/yyyy",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Recorder: RecorderConfig{
			Path: os.Getenv("DCALAB_DB"),
		},
	}
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Override with environment variables if set
	if db := os.Getenv("DCALAB_DB"); db != "" {
		cfg.Recorder.Path = db
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Simulation.WeeklyBudget <= 0 {
		return fmt.Errorf("weekly_budget must be positive")
	}
	if c.Simulation.TrailingDays < 1 {
		return fmt.Errorf("trailing_days must be at least 1")
	}
	if c.Simulation.DateFormat != "dd/mm/yyyy" && c.Simulation.DateFormat != "mm/dd/yyyy" {
		return fmt.Errorf("date_format must be dd/mm/yyyy or mm/dd/yyyy, got %q", c.Simulation.DateFormat)
	}
	if c.Output.Format != "table" && c.Output.Format != "json" {
		return fmt.Errorf("output format must be table or json, got %q", c.Output.Format)
	}
	return nil
}

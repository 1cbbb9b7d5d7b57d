// Package config provides configuration structures and loading for goulib.
package config

// Config represents the complete application configuration.
type Config struct {
	Cycle   CycleConfig   `yaml:"cycle" mapstructure:"cycle"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// CycleConfig represents cycle detection settings.
type CycleConfig struct {
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"` // floyd or brent
	Limit     int    `yaml:"limit" mapstructure:"limit"`         // max elements examined
}

// OutputConfig represents result rendering settings.
type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`       // text, html, or latex
	Precision int    `yaml:"precision" mapstructure:"precision"` // significant digits
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Cycle: CycleConfig{
			Algorithm: "brent",
			Limit:     1_000_000,
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, algorithm string, limit int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if algorithm != "" {
		c.Cycle.Algorithm = algorithm
	}
	if limit > 0 {
		c.Cycle.Limit = limit
	}
}

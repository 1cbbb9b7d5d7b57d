package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	algorithm string
	limit     int
)

var rootCmd = &cobra.Command{
	Use:   "goulib",
	Short: "Swiss-army toolbox for sequences, expressions and colors",
	Long: `A CLI companion to the goulib library: detect cycles in iterated
sequences, evaluate symbolic expressions, manipulate polynomials,
summarize samples and convert colors.

Features:
  - Cycle detection with Floyd's and Brent's algorithms
  - Symbolic expressions with text, Go and LaTeX rendering
  - Polynomial parsing, arithmetic and calculus
  - Descriptive statistics and linear regression
  - Color space conversions and perceptual distance`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goulib.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Cycle detection overrides
	rootCmd.PersistentFlags().StringVar(&algorithm, "algorithm", "",
		"Override cycle detection algorithm (floyd, brent)")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0,
		"Override max elements examined during cycle detection")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Algorithm string
	Limit     int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Algorithm: algorithm,
		Limit:     limit,
	}
}

// loadConfig loads the config file when it exists, falls back to defaults
// otherwise, and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if _, err := os.Stat(cfgFile); err == nil {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	}

	o := GetCLIOverrides()
	cfg.ApplyOverrides(o.LogLevel, o.LogFormat, o.Algorithm, o.Limit)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config provides configuration management for skillcheck using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rengarcia/web-quality-skills/internal/paths"
)

// Defaults for the validation limits.
const (
	// DefaultSkillLines is the non-blank line budget for a SKILL.md document.
	DefaultSkillLines = 500

	// DefaultReferenceLines is the non-blank line budget for a references/ file.
	DefaultReferenceLines = 200
)

// Config represents the top-level configuration structure.
type Config struct {
	// Root is the skills root directory to validate.
	Root string `mapstructure:"root" yaml:"root"`

	// Format selects the report output format: text or json.
	Format string `mapstructure:"format" yaml:"format"`

	// Strict treats warnings as failures for the exit code.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// Exclude lists glob patterns of skill directory names to skip.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// Jobs caps the number of packages validated concurrently.
	// Zero means one worker per CPU.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Limits holds the line-count budgets.
	Limits Limits `mapstructure:"limits" yaml:"limits"`
}

// Limits holds the non-blank line budgets applied by the length rules.
type Limits struct {
	SkillLines     int `mapstructure:"skill_lines" yaml:"skill_lines"`
	ReferenceLines int `mapstructure:"reference_lines" yaml:"reference_lines"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support: SKILLCHECK_ROOT, SKILLCHECK_LIMITS_SKILL_LINES, ...
	viper.SetEnvPrefix("SKILLCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("root", paths.DefaultSkillsRoot)
	viper.SetDefault("format", "text")
	viper.SetDefault("strict", false)
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("jobs", 0)
	viper.SetDefault("limits.skill_lines", DefaultSkillLines)
	viper.SetDefault("limits.reference_lines", DefaultReferenceLines)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Root:    paths.DefaultSkillsRoot,
		Format:  "text",
		Strict:  false,
		Exclude: []string{},
		Jobs:    0,
		Limits: Limits{
			SkillLines:     DefaultSkillLines,
			ReferenceLines: DefaultReferenceLines,
		},
	}
}

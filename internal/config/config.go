// Package config provides configuration for the law checker using viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. MAYBE_LAWS_LAWS_SEED for laws.seed.
const EnvPrefix = "MAYBE_LAWS"

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete law checker configuration.
type Config struct {
	Laws    LawsConfig    `mapstructure:"laws" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// LawsConfig controls how law properties are generated and checked.
type LawsConfig struct {
	MinSuccessfulTests int      `mapstructure:"min_successful_tests" validate:"min=1,max=1000000"`
	MaxSize            int      `mapstructure:"max_size" validate:"min=1,max=10000"`
	Seed               int64    `mapstructure:"seed"`
	Workers            int      `mapstructure:"workers" validate:"min=1,max=64"`
	Suites             []string `mapstructure:"suites" validate:"dive,required"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ReportConfig selects the report encoding and destination. An empty
// Output or "-" writes to stdout.
type ReportConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json yaml"`
	Output string `mapstructure:"output"`
}

// MetricsConfig defines the prometheus namespace and the optional textfile
// the metrics are exported to after a run.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace" validate:"required,max=64"`
	Textfile  string `mapstructure:"textfile"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"suite":          "laws.suites",
	"seed":           "laws.seed",
	"min-successful": "laws.min_successful_tests",
	"workers":        "laws.workers",
	"format":         "report.format",
	"output":         "report.output",
	"metrics-file":   "metrics.textfile",
	"log-level":      "logging.level",
}

var configValidator = validator.New()

// Load reads configuration from defaults, the optional file at path (or
// maybe-laws.yaml in the working directory when path is empty), the
// environment and flags, in increasing order of precedence. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("maybe-laws")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration using struct tags.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("laws.min_successful_tests", 100)
	v.SetDefault("laws.max_size", 100)
	v.SetDefault("laws.seed", 0)
	v.SetDefault("laws.workers", 4)
	v.SetDefault("laws.suites", []string{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("report.format", "text")
	v.SetDefault("report.output", "-")

	v.SetDefault("metrics.namespace", "maybe_laws")
	v.SetDefault("metrics.textfile", "")
}

// formatValidationError formats validation errors with detailed messages.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
				fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// Package config loads the journeys configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultPath is used when no config path is given.
const DefaultPath = "journeys.yaml"

var validate = validator.New()

// Config represents the journeys configuration
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// OutputConfig controls how reports are rendered
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json yaml"`
	Color  string `yaml:"color" validate:"oneof=auto always never"`
	Emoji  *bool  `yaml:"emoji" validate:"required"`
}

// SimulationConfig controls how journeys are run
type SimulationConfig struct {
	// Workers bounds concurrent journeys. Zero means no bound.
	Workers int `yaml:"workers" validate:"min=0,max=1024"`
}

// Overrides carries values from flags and the environment. Empty strings
// and negative workers leave the file value alone.
type Overrides struct {
	Format  string
	Color   string
	NoEmoji bool
	Workers int
}

// Default returns the built-in configuration.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// LoadEnv loads .env from the working directory when it exists.
func LoadEnv() error {
	if !fileExists(".env") {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	expandConfigEnvVars(&config)
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Override applies o on top of c and validates the result.
func (c *Config) Override(o Overrides) error {
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.Color != "" {
		c.Output.Color = o.Color
	}
	if o.NoEmoji {
		emoji := false
		c.Output.Emoji = &emoji
	}
	if o.Workers >= 0 {
		c.Simulation.Workers = o.Workers
	}
	return c.Validate()
}

// EmojiEnabled reports whether verdict marks are emoji.
func (c *Config) EmojiEnabled() bool {
	return c.Output.Emoji == nil || *c.Output.Emoji
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s %s", fieldName(fe), getErrorMessage(fe)))
	}
	return fmt.Errorf("%w: %s", ErrConfigValidation, strings.Join(messages, "; "))
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.ToLower(ns)
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if config.Output.Color == "" {
		config.Output.Color = "auto"
	}
	if config.Output.Emoji == nil {
		emoji := true
		config.Output.Emoji = &emoji
	}
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands environment variables in the format ${VAR}
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}

func expandConfigEnvVars(config *Config) {
	config.Output.Format = expandEnvVars(config.Output.Format)
	config.Output.Color = expandEnvVars(config.Output.Color)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

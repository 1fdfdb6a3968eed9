package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/TheBellman/timeutility/pkg/util"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Config struct {
	Log struct {
		Level      string `yaml:"level" default:"warn" validate:"oneof=debug info warn error fatal panic"`
		Format     string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output     string `yaml:"output" default:"stderr"`
		TimeFormat string `yaml:"time_format"`
	} `yaml:"log"`
	Range struct {
		Unit string `yaml:"unit" default:"hours" validate:"oneof=millis seconds minutes hours days"`
	} `yaml:"range"`
	Output struct {
		Format string `yaml:"format" default:"text" validate:"oneof=text json"`
		Limit  int    `yaml:"limit" default:"10000" validate:"gte=1"`
	} `yaml:"output"`
}

// Default returns a configuration with every field at its default value.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file, fills defaults for any
// field the file leaves unset, and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML (or from defaults when path is empty) and
// overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	var c *Config
	var err error
	if path == "" {
		c, err = Default()
	} else {
		c, err = Load(path)
	}
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("TICK_UNIT"); v != "" {
		c.Range.Unit = v
	}
	if v := os.Getenv("TICK_FORMAT"); v != "" {
		c.Output.Format = v
	}
	c.Output.Limit = util.ParseIntDefault(os.Getenv("TICK_LIMIT"), c.Output.Limit)
	if v := os.Getenv("TICK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return c, nil
}

// Package config loads converter settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".fritz2html.yaml"

type Config struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int `yaml:"indent_width" validate:"gte=1,lte=16"`
	// UseTabs indents with one tab per level and ignores IndentWidth.
	UseTabs bool `yaml:"use_tabs"`
	// KeepWhitespace keeps whitespace-only text and untrimmed text content.
	KeepWhitespace bool `yaml:"keep_whitespace"`
	// Minify collapses insignificant whitespace in the markup before parsing.
	Minify bool `yaml:"minify"`
}

func Default() Config {
	return Config{IndentWidth: 4}
}

// Indent returns the indent unit for one nesting level.
func (c Config) Indent() string {
	if c.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.IndentWidth)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

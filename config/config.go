// Package config loads renderer settings from YAML and builds the stores
// and backend they describe.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
)

// Config is the file configuration.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"`

	Textures TexturesConfig `yaml:"textures"`

	// Fonts maps font ids to TTF/OTF paths.
	Fonts map[string]string `yaml:"fonts"`
	// DefaultFont is a font path used for the empty font id. Go Regular
	// is used when unset.
	DefaultFont string `yaml:"default_font"`

	Metric        string `yaml:"metric"`
	SmoothScaling bool   `yaml:"smooth_scaling"`
	LogLevel      string `yaml:"log_level"`
}

// TexturesConfig describes where textures come from.
type TexturesConfig struct {
	// Dir is loaded recursively; ids are slash paths relative to it
	// without extension.
	Dir string `yaml:"dir"`
	// Watch reloads textures when files in Dir change.
	Watch bool `yaml:"watch"`
}

// ValidationError reports the offending YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		Backend:  backend.Software,
		Fonts:    map[string]string{},
		Metric:   uidriver.MetricManhattan.String(),
		LogLevel: "info",
	}
}

// Load reads path on top of Default and validates the result. Unknown
// keys are rejected.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Validate checks the configuration without touching the filesystem.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height <= 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if strings.TrimSpace(c.Backend) == "" {
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend is required")}
	}
	if _, err := uidriver.ParseMetric(c.Metric); err != nil {
		return &ValidationError{Path: "metric", Err: fmt.Errorf("metric must be one of: manhattan, euclidean-rgb")}
	}
	if _, err := c.Level(); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if c.Textures.Watch && c.Textures.Dir == "" {
		return &ValidationError{Path: "textures.watch", Err: fmt.Errorf("watch requires textures.dir")}
	}
	for id, path := range c.Fonts {
		if strings.TrimSpace(id) == "" {
			return &ValidationError{Path: "fonts", Err: fmt.Errorf("fonts contains an empty id; use default_font")}
		}
		if strings.TrimSpace(path) == "" {
			return &ValidationError{Path: "fonts." + id, Err: fmt.Errorf("font path must not be empty")}
		}
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be one of: debug, info, warning, error")
}

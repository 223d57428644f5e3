package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
// COGENT_LOG_LEVEL maps to log.level.
const EnvPrefix = "COGENT_"

type Config struct {
	Log       LogConfig       `koanf:"log"`
	Transform TransformConfig `koanf:"transform"`
	Source    SourceConfig    `koanf:"source"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

type TransformConfig struct {
	// Lenient keeps a process step written as a lone identifier or number
	// as plain text instead of failing the transform.
	Lenient bool `koanf:"lenient"`
}

type SourceConfig struct {
	Extension string `koanf:"extension"`
}

var defaults = map[string]any{
	"log.level":         "info",
	"log.format":        "text",
	"transform.lenient": false,
	"source.extension":  ".cg",
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "info", Format: "text"},
		Transform: TransformConfig{Lenient: false},
		Source:    SourceConfig{Extension: ".cg"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %q: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the front end cannot act on.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be 'text' or 'json'", c.Log.Format)
	}
	if !strings.HasPrefix(c.Source.Extension, ".") {
		return fmt.Errorf("invalid source.extension %q: must start with a dot", c.Source.Extension)
	}
	return nil
}

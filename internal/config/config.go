package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BLUEPRINT_"

type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Assets  AssetsConfig  `toml:"assets" yaml:"assets"`
	Schema  SchemaConfig  `toml:"schema" yaml:"schema"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"LOG_FORMAT"` // console or json
}

type AssetsConfig struct {
	Root           string `toml:"root" yaml:"root" env:"ASSETS_ROOT"`
	Extension      string `toml:"extension" yaml:"extension" env:"ASSETS_EXTENSION"`
	PreloadWorkers int    `toml:"preload_workers" yaml:"preload_workers" env:"ASSETS_PRELOAD_WORKERS"`
}

type SchemaConfig struct {
	// Components lists def type names in discriminant order. Entry 0 is
	// the NONE slot.
	Components []string `toml:"components" yaml:"components" env:"SCHEMA_COMPONENTS" envSeparator:","`
}

// Load reads path as TOML or YAML, chosen by extension, on top of the
// defaults and then applies environment overrides. An empty path yields
// the defaults with overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse config env: %w", err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			Root:           ".",
			Extension:      ".bin",
			PreloadWorkers: 4,
		},
		Schema: SchemaConfig{
			Components: []string{"NONE", "TransformDef"},
		},
	}
}

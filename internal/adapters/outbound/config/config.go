// Package config loads service configuration and branding schema overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the process-level settings shared by the CLI, HTTP API, and
// MCP server.
type Config struct {
	DataDir        string `koanf:"data_dir" validate:"required"`
	ListenAddr     string `koanf:"listen_addr" validate:"required,hostname_port"`
	LogLevel       string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string `koanf:"log_format" validate:"oneof=text json"`
	BrandingSchema string `koanf:"branding_schema"` // optional YAML override path
	GitAccessToken string `koanf:"git_access_token"`
}

func defaults() map[string]any {
	return map[string]any{
		"data_dir":    ".appforge",
		"listen_addr": ":8080",
		"log_level":   "info",
		"log_format":  "text",
	}
}

// Load merges defaults, an optional YAML config file, and APPFORGE_*
// environment variables, in ascending priority, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		k.Set(key, value)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config %s: %w", path, err)
			}
		}
	}

	k.Load(env.Provider("APPFORGE_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envTransform maps APPFORGE_LISTEN_ADDR to listen_addr.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "APPFORGE_"))
}

// Package config provides the settings shared by the mini server and its client.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPort is the port the mini server listens on and the client dials.
const DefaultPort = 8000

// DefaultDataPath is the static JSON file served on /api/data.
const DefaultDataPath = "go/cmd/miniserver/data.json"

// DataRoute is the only route the mini server answers.
const DataRoute = "/api/data"

// EnvPrefix is prepended to every environment override, e.g. SNIPPETS_PORT.
const EnvPrefix = "SNIPPETS"

// Config holds the runtime settings for the binaries.
type Config struct {
	Port     int    `mapstructure:"port"`
	DataPath string `mapstructure:"data_path"`
	LogLevel string `mapstructure:"log_level"`
	BaseURL  string `mapstructure:"base_url"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:     DefaultPort,
		DataPath: DefaultDataPath,
		LogLevel: "info",
	}
}

// Load reads the defaults and applies SNIPPETS_* environment overrides.
func Load() (Config, error) {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", def.Port)
	v.SetDefault("data_path", def.DataPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("base_url", def.BaseURL)

	cfg := Config{
		Port:     v.GetInt("port"),
		DataPath: v.GetString("data_path"),
		LogLevel: strings.ToLower(v.GetString("log_level")),
		BaseURL:  strings.TrimRight(v.GetString("base_url"), "/"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &Error{Field: "port", Message: fmt.Sprintf("%d is not a valid TCP port", c.Port)}
	}
	if c.DataPath == "" {
		return &Error{Field: "data_path", Message: "must not be empty"}
	}
	return nil
}

// Addr is the listen address for the server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DataURL is the URL the client fetches.
func (c Config) DataURL() string {
	base := c.BaseURL
	if base == "" {
		base = fmt.Sprintf("http://localhost:%d", c.Port)
	}
	return base + DataRoute
}

// Error represents a configuration error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

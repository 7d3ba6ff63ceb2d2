// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LLMCOMPARE_"

	defaultLogFile    = "llmcompare.log"
	defaultLogLevel   = "info"
	defaultServerAddr = "127.0.0.1:8080"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug       bool        `json:"debug" env:"DEBUG"`
	LogFile     string      `json:"logFile,omitempty" env:"LOG_FILE"`
	LogLevel    string      `json:"logLevel,omitempty" env:"LOG_LEVEL"`
	CatalogPath string      `json:"catalogPath,omitempty" env:"CATALOG"`
	NoColor     bool        `json:"noColor" env:"NO_COLOR"`
	ServerAddr  string      `json:"serverAddr,omitempty" env:"SERVER_ADDR"`
	Defaults    query.State `json:"defaults"`
	ConfigPath  string      `json:"-" mapstructure:"-"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return defaultLogFile
}

// Level returns the log level, "debug" when Debug is set.
func (c Config) Level() string {
	if c.Debug {
		return "debug"
	}
	if l := strings.TrimSpace(c.LogLevel); l != "" {
		return strings.ToLower(l)
	}
	return defaultLogLevel
}

// ServerAddress returns the listen address for the HTTP server.
func (c Config) ServerAddress() string {
	if addr := strings.TrimSpace(c.ServerAddr); addr != "" {
		return addr
	}
	return defaultServerAddr
}

// DefaultState returns the configured starting state. Unset enumerations and
// an empty scenario take their built-in defaults.
func (c Config) DefaultState() query.State {
	st := c.Defaults
	def := query.DefaultState()
	if st.SortKey == "" {
		st.SortKey = def.SortKey
	}
	if st.Direction == "" {
		st.Direction = def.Direction
	}
	if st.Mode == "" {
		st.Mode = def.Mode
	}
	if st.Scenario.InputTokens == 0 && st.Scenario.OutputTokens == 0 {
		st.Scenario = def.Scenario
	}
	return st.Normalize()
}

// ApplyEnv overrides cfg with LLMCOMPARE_* environment variables. Unset
// variables leave the existing values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// FromViper materializes v into a Config and applies environment overrides.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	return cfg, nil
}

// Load reads a JSON config file. A missing file at the default path yields
// the defaults; a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	loaded, err := ReadConfig(v, explicit)
	if err != nil {
		return Config{}, err
	}
	cfg, err := FromViper(v)
	if err != nil {
		return Config{}, err
	}
	if !loaded {
		cfg.ConfigPath = ""
	}
	return cfg, nil
}

// ReadConfig reads v's config file and reports whether one was read. A
// missing file is only an error when required.
func ReadConfig(v *viper.Viper, required bool) (bool, error) {
	err := v.ReadInConfig()
	if err == nil {
		return true, nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		if required {
			return false, fmt.Errorf("no configuration file found at %q", v.ConfigFileUsed())
		}
		return false, nil
	}
	return false, fmt.Errorf("could not read config file %q: %w", v.ConfigFileUsed(), err)
}

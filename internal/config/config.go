package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble-sort"
	DefaultInput     = "64, 34, 25, 12, 22, 11, 90"
	DefaultSpeed     = 5.0
	DefaultBaseDelay = time.Second
	DefaultTheme     = "light"
	DefaultLanguage  = "python"
	DefaultAddr      = "127.0.0.1:8080"

	// EnvPrefix scopes environment overrides. Nested keys use a double
	// underscore: ALGOVIZ_SERVER__ADDR sets server.addr.
	EnvPrefix = "ALGOVIZ_"
)

var (
	ErrInvalidSpeed    = errors.New("config: speed must be positive")
	ErrInvalidDelay    = errors.New("config: base_delay must not be negative")
	ErrInvalidLogLevel = errors.New("config: log_level must be debug, info, warn or error")
	ErrEmptyAddr       = errors.New("config: server.addr must not be empty")
)

type Config struct {
	Algorithm string        `yaml:"algorithm" koanf:"algorithm"`
	Input     string        `yaml:"input" koanf:"input"`
	Target    *int          `yaml:"target,omitempty" koanf:"target"`
	Speed     float64       `yaml:"speed" koanf:"speed"`
	BaseDelay time.Duration `yaml:"base_delay" koanf:"base_delay"`
	Seed      int64         `yaml:"seed" koanf:"seed"`
	Theme     string        `yaml:"theme" koanf:"theme"`
	Language  string        `yaml:"language" koanf:"language"`
	LogLevel  string        `yaml:"log_level" koanf:"log_level"`
	PrefsPath string        `yaml:"prefs_path" koanf:"prefs_path"`
	Server    ServerConfig  `yaml:"server" koanf:"server"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr" koanf:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input:     DefaultInput,
		Speed:     DefaultSpeed,
		BaseDelay: DefaultBaseDelay,
		Theme:     DefaultTheme,
		Language:  DefaultLanguage,
		LogLevel:  "info",
		PrefsPath: DefaultPrefsPath(),
		Server: ServerConfig{
			Addr:           DefaultAddr,
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}

// Load starts from defaults, overlays the file at path when it exists
// (YAML, or TOML for a .toml extension), then ALGOVIZ_ environment
// variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlParser{}
	}
	return yaml.Parser()
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if !(c.Speed > 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidSpeed, c.Speed)
	}
	if c.BaseDelay < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidDelay, c.BaseDelay)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Server.Addr == "" {
		return ErrEmptyAddr
	}
	return nil
}

// tomlParser lets koanf read TOML files through BurntSushi/toml.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if _, err := toml.Decode(string(b), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

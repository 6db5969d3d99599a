// Package config loads lsreg settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/lsregkit/internal/dumptext"
	"github.com/joshuapare/lsregkit/internal/logger"
	"github.com/joshuapare/lsregkit/pkg/printer"
	"github.com/joshuapare/lsregkit/pkg/types"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. LSREG_FORMAT.
	EnvPrefix = "LSREG"

	// LocalFile is looked up in the working directory.
	LocalFile = ".lsreg.yaml"

	appDir   = "lsreg"
	userFile = "config.yaml"
)

// Config holds all configuration options for lsreg.
type Config struct {
	// Command overrides the dump command, split on whitespace. Empty means
	// lsregister is located from the host OS release.
	Command     string    `mapstructure:"command" yaml:"command"`
	HeaderLines int       `mapstructure:"header_lines" yaml:"header_lines"`
	Encoding    string    `mapstructure:"encoding" yaml:"encoding"`
	Format      string    `mapstructure:"format" yaml:"format"` // text, xml, json or yaml
	Log         LogConfig `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // text or json
	Dir    string `mapstructure:"dir" yaml:"dir,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HeaderLines: dumptext.DefaultHeaderLines,
		Encoding:    dumptext.EncodingUTF8,
		Format:      "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Argv returns the configured dump command, or nil when it should be
// resolved at runtime.
func (c Config) Argv() []string {
	return strings.Fields(c.Command)
}

// Validate checks option values that viper cannot type check.
func (c Config) Validate() error {
	var errs []error
	if c.HeaderLines < dumptext.NoHeader {
		errs = append(errs, fmt.Errorf("header_lines must be >= %d, got %d", dumptext.NoHeader, c.HeaderLines))
	}
	if err := dumptext.CheckEncoding(c.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("encoding: %w", err))
	}
	if _, err := printer.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json; got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return &types.Error{Kind: types.ErrKindConfig, Msg: "invalid configuration", Err: errors.Join(errs...)}
	}
	return nil
}

// New returns a viper instance with defaults and environment bindings for
// every key. Callers may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("command", d.Command)
	v.SetDefault("header_lines", d.HeaderLines)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("format", d.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.dir", d.Log.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v. An explicit path must exist; otherwise
// the lookup order is ./.lsreg.yaml, then $XDG_CONFIG_HOME/lsreg/config.yaml,
// and running without any file is fine.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, &types.Error{Kind: types.ErrKindConfig, Msg: "reading " + path, Err: err}
		}
		logger.Debug("loaded config", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &types.Error{Kind: types.ErrKindConfig, Msg: "decoding config", Err: err}
	}
	cfg.File = path
	return cfg, cfg.Validate()
}

func findConfig() string {
	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}
	if path := DefaultPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultPath is the per-user config file location.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDir, userFile)
}

const defaultHeader = `# lsreg configuration
#
# Every key can also be set from the environment with the LSREG_ prefix,
# for example LSREG_FORMAT=json or LSREG_LOG_LEVEL=debug.

`

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(defaultHeader); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	logger.Info("created default config", "path", path)
	return nil
}

// Package config loads the strprof configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/strprof/config.toml
// (~/.config/strprof/config.toml when XDG_CONFIG_HOME is unset):
//
//	[generate]
//	seed = 42
//	preamble = true
//
//	[plot]
//	width = 1024
//	height = 768
//	format = "png"
//	scale = 2.0
//
//	[cache]
//	backend = "redis"        # file, redis or none
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
// A missing default file yields [Default]. Command-line flags override
// every value read here.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/strprof/pkg/cache"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/plot"
)

const appName = "strprof"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the parsed configuration file.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Plot     PlotConfig     `toml:"plot"`
	Cache    CacheConfig    `toml:"cache"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Seed     uint64 `toml:"seed"`
	Preamble bool   `toml:"preamble"`

	// SeedSet records whether the file set a seed, since 0 is a valid seed.
	SeedSet bool `toml:"-"`
}

// PlotConfig holds defaults for the plot command.
type PlotConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Format string  `toml:"format"`
	Scale  float64 `toml:"scale"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Plot: PlotConfig{
			Width:  plot.DefaultWidth,
			Height: plot.DefaultHeight,
			Format: plot.FormatSVG,
			Scale:  plot.DefaultScale,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLArtifact},
		},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path on top of [Default].
//
// An empty path means [DefaultPath], which may be absent. An explicit path
// that does not exist is a FILE_NOT_FOUND error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
		return Default(), nil
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Generate.SeedSet = md.IsDefined("generate", "seed")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports inconsistent settings as INVALID_CONFIG errors.
func (c *Config) Validate() error {
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 || c.Plot.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"plot width, height and scale must be positive (got %v, %v, %v)", c.Plot.Width, c.Plot.Height, c.Plot.Scale)
	}
	if err := plot.ValidateFormat(c.Plot.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "plot.format")
	}

	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

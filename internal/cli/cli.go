// Package cli implements the strprof command-line interface.
//
// # Commands
//
//   - generate: write a random string corpus whose lengths follow a distribution
//   - plot: render CSV timing data as an SVG, PNG or PDF line chart
//   - summary: print per-series statistics of CSV timing data
//   - inspect: compare a generated corpus with its preamble
//   - cache: manage the rendered plot cache
//
// Corpus data and tables go to stdout; logs and status lines go to stderr.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/internal/config"
	"github.com/matzehuels/strprof/pkg/buildinfo"
	"github.com/matzehuels/strprof/pkg/cache"
	"github.com/matzehuels/strprof/pkg/observability"
	"github.com/matzehuels/strprof/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "strprof"

	// redisKeyPrefix namespaces keys in a shared Redis instance.
	redisKeyPrefix = "strprof:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "strprof generates string corpora and plots string container benchmarks",
		Long:         `strprof generates random string corpora whose lengths follow an identical, uniform or binomial distribution, and plots the CSV timings measured on them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			observability.SetPipelineHooks(&logHooks{logger: c.Logger})
			observability.SetCacheHooks(&logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/strprof/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config returns the loaded configuration, or defaults when a command runs
// without the root pre-run hook.
func (c *CLI) config() *config.Config {
	if c.Config == nil {
		return config.Default()
	}
	return c.Config
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	cfg := c.config()
	store, keyer := c.newCache(ctx, cfg.Cache, noCache)
	r := pipeline.NewRunner(store, keyer, c.Logger)
	r.ArtifactTTL = cfg.Cache.TTL.Duration
	return r
}

// newCache opens the configured cache backend. Failures degrade to no caching
// with a warning: a plot is always worth more than its cache entry.
func (c *CLI) newCache(ctx context.Context, cfg config.CacheConfig, noCache bool) (cache.Cache, cache.Keyer) {
	if noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	if cfg.Backend == config.BackendRedis {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, cache.NewScopedKeyer(nil, redisKeyPrefix)
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/strprof/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

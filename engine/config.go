package engine

import (
	"io"
	"log/slog"
	"runtime"
)

// Option customizes a Config before a search begins, directly grounded
// on the teacher's builder.BuilderOption / newBuilderConfig pattern:
// defaults first, then each Option applied in order.
type Option func(*Config)

// Config holds the tunable knobs shared by RunEnumerate and RunNMC. The
// zero value is never used directly; newConfig builds one from defaults
// plus Options.
type Config struct {
	workers      int
	level        int
	logger       *slog.Logger
	outputPath   string
	enclosedPath string
	seed         uint64
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		workers:    runtime.NumCPU(),
		level:      1,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		outputPath: "",
		seed:       1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.outputPath != "" && cfg.enclosedPath == "" {
		cfg.enclosedPath = cfg.outputPath + "_enclosed"
	}
	return cfg
}

// WithWorkers sets the worker pool size. Non-positive values are a
// no-op, leaving the default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithLevel sets the NMC search depth. Only consulted by RunNMC.
// Negative values are a no-op.
func WithLevel(level int) Option {
	return func(cfg *Config) {
		if level >= 0 {
			cfg.level = level
		}
	}
}

// WithLogger sets the structured logger improvement events and run
// summaries are written to. A nil logger is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOutputPath sets the path the best plain (non-enclosed) candidate
// is written to, and derives "<path>_enclosed" for the best
// enclosed-space candidate unless WithEnclosedPath overrides it. An
// empty path disables writing entirely.
func WithOutputPath(path string) Option {
	return func(cfg *Config) {
		cfg.outputPath = path
	}
}

// WithEnclosedPath overrides the derived "<path>_enclosed" output path.
func WithEnclosedPath(path string) Option {
	return func(cfg *Config) {
		cfg.enclosedPath = path
	}
}

// WithSeed sets the seed for the NMC search's random playouts. Only
// consulted by RunNMC.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.seed = seed
	}
}

package autoid

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/schatt/sixlayer-autoid/config"
)

// Option configures the Engine.
type Option func(*engineConfig)

// engineConfig holds configuration collected while building an Engine.
type engineConfig struct {
	cfg         *config.Configuration
	configPath  string
	store       *config.Store
	logger      *slog.Logger
	tracer      trace.Tracer
	meter       metric.Meter
	logCapacity int
	session     string
	clipboard   func(string) error
}

// WithConfig sets the initial configuration installed in the engine's
// store. It takes precedence over a configuration file given with
// WithConfigFile.
func WithConfig(cfg config.Configuration) Option {
	return func(c *engineConfig) {
		cfg := cfg
		c.cfg = &cfg
	}
}

// WithConfigFile loads the initial configuration from an autoid.yaml file
// (or a directory containing one). New fails with a configuration-kind
// error when the file is missing or malformed; callers that want to fall
// back to defaults can match ErrConfigNotFound.
func WithConfigFile(path string) Option {
	return func(c *engineConfig) {
		c.configPath = path
	}
}

// WithConfigStore shares an existing configuration store instead of
// creating one. Engines built over the same store see each other's
// configuration changes immediately; this is how a host application keeps
// one process-wide policy across several traversal entry points.
func WithConfigStore(store *config.Store) Option {
	return func(c *engineConfig) {
		if store != nil {
			c.store = store
		}
	}
}

// WithLogger sets a custom structured logger for the engine and every
// component it wires. If not provided, a JSON logger writing to stderr is
// created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer. Only the file-export write is
// traced; a nil tracer leaves tracing off.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithMeterProvider enables OpenTelemetry metrics for generation events
// (identifiers produced, collisions detected, identifier length). A nil
// provider leaves instrumentation off.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *engineConfig) {
		if provider != nil {
			c.meter = provider.Meter(instrumentationName)
		}
	}
}

// WithDebugLogCapacity bounds the debug log at the given number of
// entries. Once full, the oldest entry is evicted per recorded entry.
// Non-positive values fall back to the default capacity.
func WithDebugLogCapacity(capacity int) Option {
	return func(c *engineConfig) {
		c.logCapacity = capacity
	}
}

// WithSession fixes the engine's session identity instead of generating
// one. The session is stamped into export artifacts and the debug report,
// never into generated identifiers.
func WithSession(session string) Option {
	return func(c *engineConfig) {
		c.session = session
	}
}

// WithClipboard replaces the system clipboard write used by
// ExportToClipboard. Headless environments can inject their own sink
// instead of receiving ErrClipboardUnavailable.
func WithClipboard(fn func(string) error) Option {
	return func(c *engineConfig) {
		c.clipboard = fn
	}
}

package autoid

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/debuglog"
	"github.com/schatt/sixlayer-autoid/export"
	"github.com/schatt/sixlayer-autoid/hierarchy"
	"github.com/schatt/sixlayer-autoid/ident"
	"github.com/schatt/sixlayer-autoid/resolve"
)

// instrumentationName is the OpenTelemetry instrumentation scope for the
// meter derived from a provider given with WithMeterProvider.
const instrumentationName = "github.com/schatt/sixlayer-autoid"

// Engine wires every component of the identifier pipeline: the
// configuration store, the hierarchy tracker, the generator and its
// collision registry, the assignment resolver, the debug log, and the
// exporter. One Engine serves one run; parallel units of work that need
// their own policy install a scoped configuration with
// config.NewContext rather than building a second engine.
//
// Example:
//
//	engine, err := autoid.New(
//	    autoid.WithConfig(config.Configuration{
//	        EnableAutoIDs: true,
//	        Namespace:     "fuelapp",
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine.PushFrame("Fuel Form")
//	id, _ := engine.Resolve(ctx, resolve.Node{Subject: "save", Role: "button"})
//	engine.PopFrame()
type Engine struct {
	session  string
	logger   *slog.Logger
	store    *config.Store
	tracker  *hierarchy.Tracker
	registry *ident.Registry
	log      *debuglog.Log
	gen      *ident.Generator
	resolver *resolve.Resolver
	exporter *export.Exporter
}

// New builds an engine with default wiring, applying any options. Without
// options the engine runs on its own store holding the default
// configuration, a JSON logger to stderr, and a generated session id.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.session == "" {
		cfg.session = uuid.NewString()
	}

	store := cfg.store
	if store == nil {
		store = config.NewStore()
	}
	if cfg.configPath != "" {
		loaded, err := config.Load(cfg.configPath)
		if err != nil {
			return nil, NewConfigurationError("autoid.New", err).
				WithContext(map[string]any{"path": cfg.configPath})
		}
		store.Set(loaded)
	}
	if cfg.cfg != nil {
		store.Set(*cfg.cfg)
	}

	tracker := hierarchy.NewTracker()
	registry := ident.NewRegistry()
	log := debuglog.NewWithCapacity(cfg.logCapacity)

	genOpts := []ident.GeneratorOption{ident.WithLogger(cfg.logger)}
	if cfg.meter != nil {
		genOpts = append(genOpts, ident.WithMeter(cfg.meter))
	}
	gen := ident.NewGenerator(store, tracker, registry, log, genOpts...)

	exportOpts := []export.ExporterOption{
		export.WithLogger(cfg.logger),
		export.WithSession(cfg.session),
	}
	if cfg.tracer != nil {
		exportOpts = append(exportOpts, export.WithTracer(cfg.tracer))
	}
	if cfg.clipboard != nil {
		exportOpts = append(exportOpts, export.WithClipboardWriter(cfg.clipboard))
	}

	return &Engine{
		session:  cfg.session,
		logger:   cfg.logger,
		store:    store,
		tracker:  tracker,
		registry: registry,
		log:      log,
		gen:      gen,
		resolver: resolve.NewResolver(store, gen, resolve.WithLogger(cfg.logger)),
		exporter: export.NewExporter(registry, log, exportOpts...),
	}, nil
}

// Session returns the engine's session identity. It appears in export
// artifacts and the debug report, never in generated identifiers.
func (e *Engine) Session() string {
	return e.session
}

// Config returns the active configuration: a scoped override installed on
// ctx when present, otherwise the store's current value.
func (e *Engine) Config(ctx context.Context) config.Configuration {
	return e.store.Get(ctx)
}

// SetConfig replaces the engine's process-wide configuration. The change
// is visible to the next generation call.
func (e *Engine) SetConfig(cfg config.Configuration) {
	e.store.Set(cfg)
}

// UpdateConfig applies fn to a copy of the current configuration and
// installs the result atomically.
func (e *Engine) UpdateConfig(fn func(*config.Configuration)) {
	e.store.Update(fn)
}

// ResetConfig restores the documented default configuration.
func (e *Engine) ResetConfig() {
	e.store.ResetToDefaults()
}

// LoadConfigFile loads an autoid.yaml file (or a directory containing
// one) into the engine's store. Matching ErrConfigNotFound lets callers
// treat a missing file as "keep current configuration".
func (e *Engine) LoadConfigFile(path string) error {
	loaded, err := config.Load(path)
	if err != nil {
		return NewConfigurationError("Engine.LoadConfigFile", err).
			WithContext(map[string]any{"path": path})
	}
	e.store.Set(loaded)
	e.logger.Info("configuration loaded", "path", path,
		"namespace", loaded.Namespace, "mode", loaded.Mode.String())
	return nil
}

// WatchConfigFile starts reloading the file at path into the engine's
// store whenever it changes on disk. The returned watcher keeps running
// until its Stop method is called or ctx is done; stopping it is the
// caller's responsibility.
func (e *Engine) WatchConfigFile(ctx context.Context, path string) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(e.store, path, e.logger)
	if err != nil {
		return nil, NewIOError("Engine.WatchConfigFile", err).
			WithContext(map[string]any{"path": path})
	}
	if err := watcher.Start(ctx); err != nil {
		return nil, NewIOError("Engine.WatchConfigFile", err).
			WithContext(map[string]any{"path": path})
	}
	return watcher, nil
}

// PushFrame records descent into a container during traversal.
func (e *Engine) PushFrame(label string) {
	e.tracker.PushFrame(label)
}

// PopFrame records ascent out of a container. Popping with no frames
// pushed is a silent no-op so traversal code can pop defensively.
func (e *Engine) PopFrame() {
	e.tracker.PopFrame()
}

// SetScreenContext overwrites the current screen label.
func (e *Engine) SetScreenContext(label string) {
	e.tracker.SetScreenContext(label)
}

// SetNavigationState records a free-form navigation label for the debug
// report. It never affects generated identifiers.
func (e *Engine) SetNavigationState(label string) {
	e.tracker.SetNavigationState(label)
}

// Generate derives the identifier for one node from the active
// configuration, the tracker state, and the given hints, registering the
// result for collision detection. Most callers should go through Resolve,
// which applies the assignment cascade first.
func (e *Engine) Generate(ctx context.Context, subject, role, qualifier string) string {
	return e.gen.Generate(ctx, ident.Request{Subject: subject, Role: role, Context: qualifier})
}

// GenerateExact returns name unchanged, bypassing configuration,
// hierarchy, and sanitization, while still registering it for collision
// bookkeeping.
func (e *Engine) GenerateExact(name string) string {
	return e.gen.GenerateExact(name)
}

// CheckForCollision reports whether id has already been issued this run,
// without mutating the registry.
func (e *Engine) CheckForCollision(id string) bool {
	return e.gen.CheckForCollision(id)
}

// Resolve applies the assignment cascade to one node and returns the
// identifier to attach, if any:
//
//	explicit literal > node-local disable > node-local enable >
//	ambient override > global EnableAutoIDs
//
// Thread an ambient override for a subtree with resolve.WithOverride.
func (e *Engine) Resolve(ctx context.Context, node resolve.Node) (string, bool) {
	return e.resolver.Resolve(ctx, node)
}

// DebugEntries returns a copy of the recorded generation events, oldest
// first. The log only fills while EnableDebugLogging is true.
func (e *Engine) DebugEntries() []debuglog.Entry {
	return e.log.Entries()
}

// ClearDebugLog removes every recorded generation event.
func (e *Engine) ClearDebugLog() {
	e.log.Clear()
}

// Render returns the test-script artifact for every identifier known so
// far. Nothing generated yet yields an empty string, not an error.
func (e *Engine) Render(ctx context.Context, format export.Format) (string, error) {
	out, err := e.exporter.Render(ctx, format)
	if err != nil {
		return "", NewExportError("Engine.Render", err).
			WithContext(map[string]any{"format": format.String()})
	}
	return out, nil
}

// ExportToFile renders the artifact and writes it to path; an empty path
// selects a session-unique file in the system temp directory. The chosen
// path is returned and its cleanup is the caller's responsibility. With
// nothing to export no file is created and the returned path is empty.
func (e *Engine) ExportToFile(ctx context.Context, format export.Format, path string) (string, error) {
	written, err := e.exporter.ExportToFile(ctx, format, path)
	if err != nil {
		return "", NewExportError("Engine.ExportToFile", err).
			WithContext(map[string]any{"format": format.String(), "path": path})
	}
	return written, nil
}

// ExportToClipboard renders the artifact and places it on the system
// clipboard. With nothing to export the clipboard is left untouched.
func (e *Engine) ExportToClipboard(ctx context.Context, format export.Format) error {
	if err := e.exporter.ExportToClipboard(ctx, format); err != nil {
		return NewExportError("Engine.ExportToClipboard", err).
			WithContext(map[string]any{"format": format.String()})
	}
	return nil
}

// Reset clears the run-scoped state: the hierarchy tracker, the collision
// registry, and the debug log. The configuration is left as it is; call
// ResetConfig to restore defaults too. Call it between test cases.
func (e *Engine) Reset() {
	e.tracker.Reset()
	e.registry.Clear()
	e.log.Clear()
}

// Store returns the engine's configuration store for direct use, e.g. to
// share it with another engine or to build scoped contexts from helpers.
func (e *Engine) Store() *config.Store {
	return e.store
}

// Tracker returns the engine's hierarchy tracker.
func (e *Engine) Tracker() *hierarchy.Tracker {
	return e.tracker
}

// Registry returns the engine's collision registry.
func (e *Engine) Registry() *ident.Registry {
	return e.registry
}

// DebugLog returns the engine's debug log. Generators built by hand with
// ident.NewGenerator can share it so one scope keeps one ordered record.
func (e *Engine) DebugLog() *debuglog.Log {
	return e.log
}

package ident

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/debuglog"
	"github.com/schatt/sixlayer-autoid/hierarchy"
)

// DefaultRole is the role segment used when the caller supplies none.
const DefaultRole = "ui"

// Request carries the per-node inputs for one generation call. Subject
// must be a stable, content-derived token (a data identifier, a declared
// name, label text); never anything resembling a memory address or a
// timestamp, or the identifier stops being reproducible across runs.
type Request struct {
	// Subject is the content-derived token identifying the node.
	Subject string

	// Role is the element kind, e.g. "button", "item", "text".
	Role string

	// Context is an extra caller-supplied qualifier. It only appears in
	// the identifier under the semantic naming mode.
	Context string
}

// Generator derives identifier strings from the active configuration, the
// tracker state, and per-node hints. The derivation is deterministic: the
// same configuration, tracker state, and request always produce the same
// string, across call orders, runs, and process restarts.
//
// Configuration is read through the store on every call, never cached, so
// a mid-sequence configuration change is visible on the next identifier.
type Generator struct {
	store     *config.Store
	tracker   *hierarchy.Tracker
	registry  *Registry
	log       *debuglog.Log
	sanitizer *Sanitizer
	logger    *slog.Logger
	metrics   *otelMetrics
}

// GeneratorOption configures optional generator collaborators.
type GeneratorOption func(*Generator)

// WithLogger sets the structured logger used for generation events.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMeter enables OpenTelemetry metrics for generation events. A nil
// meter leaves instrumentation off.
func WithMeter(meter metric.Meter) GeneratorOption {
	return func(g *Generator) {
		metrics, err := initOTelMetrics(meter)
		if err != nil {
			g.logger.Warn("failed to init generation metrics", "error", err)
			return
		}
		g.metrics = metrics
	}
}

// NewGenerator wires a generator to its collaborators. The store and
// tracker are consulted on every call; the registry and log receive every
// produced identifier.
func NewGenerator(store *config.Store, tracker *hierarchy.Tracker, registry *Registry, log *debuglog.Log, opts ...GeneratorOption) *Generator {
	g := &Generator{
		store:     store,
		tracker:   tracker,
		registry:  registry,
		log:       log,
		sanitizer: NewSanitizer(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate derives the identifier for one node, registers it in the
// collision set, and, when debug logging is enabled, appends a log entry.
//
// Derivation: read the active configuration and tracker snapshot, compose
// the ordered segments [globalPrefix, namespace, screenContext,
// component-qualifier, role, subject], sanitize every human-supplied
// segment, drop empty and consecutively repeated segments, and join with
// ".". The screen context is pinned to "main" while UI-test integration
// is enabled. Only the innermost hierarchy frame may contribute a
// qualifier; ancestor chains never concatenate, which keeps length
// bounded at any nesting depth.
func (g *Generator) Generate(ctx context.Context, req Request) string {
	cfg := g.store.Get(ctx)
	id := g.compose(cfg, req)

	collision := g.registry.Contains(id)
	g.registry.Add(id)

	if cfg.EnableDebugLogging {
		g.log.Record(debuglog.Entry{
			Time:    time.Now(),
			Subject: req.Subject,
			Role:    req.Role,
			Context: req.Context,
			ID:      id,
		})
	}

	g.metrics.record(ctx, req.Role, id, collision)
	g.logger.Debug("generated identifier",
		"id", id, "subject", req.Subject, "role", req.Role, "collision", collision)

	return id
}

// GenerateExact returns name unchanged: no configuration, no hierarchy,
// no sanitization. The name still enters the collision registry so exact
// identifiers participate in duplicate detection.
func (g *Generator) GenerateExact(name string) string {
	g.registry.Add(name)
	g.logger.Debug("exact identifier registered", "id", name)
	return name
}

// CheckForCollision reports whether id has already been issued this run,
// without mutating the registry.
func (g *Generator) CheckForCollision(id string) bool {
	return g.registry.Contains(id)
}

func (g *Generator) compose(cfg config.Configuration, req Request) string {
	screen := g.tracker.ScreenContext()
	if cfg.EnableUITestIntegration {
		// Pinned so identifiers stay stable regardless of where
		// navigation actually is.
		screen = hierarchy.DefaultScreenContext
	}

	subject := req.Subject
	if subject == "" {
		if frame, ok := g.tracker.InnermostFrame(); ok {
			subject = frame
		}
	}
	subjectSeg := g.sanitizer.Sanitize(subject)
	roleSeg := g.sanitizer.Sanitize(req.Role)

	var qualifierSeg string
	if cfg.EnableViewHierarchyTracking && cfg.IncludeComponentNames {
		if frame, ok := g.tracker.InnermostFrame(); ok {
			qualifierSeg = g.sanitizer.Sanitize(frame)
		}
	}
	if qualifierSeg != "" && qualifierSeg == subjectSeg {
		// The frame already names the subject; repeating it would read
		// like "container.container".
		qualifierSeg = ""
	}

	segments := make([]string, 0, 6)
	segments = append(segments,
		g.sanitizer.Sanitize(cfg.GlobalPrefix),
		g.sanitizer.Sanitize(cfg.Namespace),
		g.sanitizer.Sanitize(screen),
		qualifierSeg,
	)

	switch cfg.Mode {
	case config.ModeSemantic:
		segments = append(segments, g.sanitizer.Sanitize(req.Context))
		if cfg.IncludeElementTypes && roleSeg != "" {
			segments = append(segments, roleSeg)
		}
	default:
		if roleSeg == "" {
			roleSeg = DefaultRole
		}
		segments = append(segments, roleSeg)
	}
	segments = append(segments, subjectSeg)

	id := joinSegments(segments)
	if id == "" {
		// Everything was empty. Degrade to a usable identifier rather
		// than an empty string.
		if roleSeg != "" {
			return roleSeg
		}
		return DefaultRole
	}
	return id
}

// joinSegments joins non-empty segments with ".", dropping a segment that
// repeats the one immediately before it.
func joinSegments(segments []string) string {
	kept := segments[:0]
	prev := ""
	for _, seg := range segments {
		if seg == "" || seg == prev {
			continue
		}
		kept = append(kept, seg)
		prev = seg
	}
	return strings.Join(kept, ".")
}

package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/schatt/sixlayer-autoid/debuglog"
	"github.com/schatt/sixlayer-autoid/ident"
)

// Sentinel errors returned by export operations.
var (
	// ErrUnknownFormat indicates an unrecognized export format.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrClipboardUnavailable indicates the system clipboard could not be
	// written, typically in headless environments.
	ErrClipboardUnavailable = errors.New("export: clipboard unavailable")
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Exporter renders every identifier known so far into a test artifact.
// Identifiers come from the collision registry; roles are recovered from
// debug-log entries when debug logging was on, and identifiers without a
// recorded role fall back to lookup-only statements.
//
// Having nothing to export is a valid outcome, never an error: Render
// returns an empty string, ExportToFile writes nothing and returns an
// empty path, ExportToClipboard leaves the clipboard untouched.
type Exporter struct {
	registry  *ident.Registry
	log       *debuglog.Log
	logger    *slog.Logger
	tracer    trace.Tracer
	session   string
	clipboard func(string) error
}

// ExporterOption configures optional exporter collaborators.
type ExporterOption func(*Exporter)

// WithLogger sets the structured logger used for export events.
func WithLogger(logger *slog.Logger) ExporterOption {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTracer enables a span around the file-export write, the only
// blocking I/O in this module. A nil tracer leaves tracing off.
func WithTracer(tracer trace.Tracer) ExporterOption {
	return func(e *Exporter) {
		e.tracer = tracer
	}
}

// WithSession stamps a session identity into rendered artifacts and
// default file names.
func WithSession(session string) ExporterOption {
	return func(e *Exporter) {
		e.session = session
	}
}

// WithClipboardWriter replaces the system clipboard write. Headless
// environments that have no clipboard can inject their own sink instead
// of receiving ErrClipboardUnavailable.
func WithClipboardWriter(fn func(string) error) ExporterOption {
	return func(e *Exporter) {
		if fn != nil {
			e.clipboard = fn
		}
	}
}

// NewExporter wires an exporter to the registry and debug log it reads.
func NewExporter(registry *ident.Registry, log *debuglog.Log, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		registry: registry,
		log:      log,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render returns the artifact text for every identifier known so far.
// Returns an empty string when nothing has been generated yet.
func (e *Exporter) Render(ctx context.Context, format Format) (string, error) {
	if !format.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	entries := e.collect()
	if len(entries) == 0 {
		return "", nil
	}

	switch format {
	case FormatJSON:
		return renderJSON(e.session, entries)
	case FormatText:
		return renderText(entries), nil
	default:
		return renderXCUITest(e.session, entries), nil
	}
}

// ExportToFile renders the artifact and writes it to path. An empty path
// selects a session-unique file in the system temp directory; the chosen
// path is returned and its cleanup is the caller's responsibility. When
// nothing has been generated yet no file is created and the returned path
// is empty.
func (e *Exporter) ExportToFile(ctx context.Context, format Format, path string) (string, error) {
	var span trace.Span
	if e.tracer != nil {
		ctx, span = e.tracer.Start(ctx, "autoid.export.file")
		defer span.End()
		span.SetAttributes(attribute.String("export.format", format.String()))
	}

	content, err := e.Render(ctx, format)
	if err != nil {
		return "", err
	}
	if content == "" {
		e.logger.Debug("nothing to export, no file written")
		return "", nil
	}

	if path == "" {
		session := e.session
		if session == "" {
			session = uuid.NewString()
		}
		path = filepath.Join(os.TempDir(), fmt.Sprintf("autoid-export-%s%s", session, format.FileExtension()))
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	if span != nil {
		span.SetAttributes(attribute.String("export.path", path))
	}
	e.logger.Info("exported identifiers", "format", format.String(),
		"path", path, "identifiers", e.registry.Len())
	return path, nil
}

// ExportToClipboard renders the artifact and places it on the system
// clipboard. When nothing has been generated yet the clipboard is left
// untouched and no error is returned.
func (e *Exporter) ExportToClipboard(ctx context.Context, format Format) error {
	content, err := e.Render(ctx, format)
	if err != nil {
		return err
	}
	if content == "" {
		e.logger.Debug("nothing to export, clipboard untouched")
		return nil
	}

	write := e.clipboard
	if write == nil {
		write = clipboardWriteAll
	}
	if err := write(content); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}

	e.logger.Info("exported identifiers to clipboard", "format", format.String(),
		"identifiers", e.registry.Len())
	return nil
}

// collect merges the registry's identifiers with the roles the debug log
// remembers for them, sorted by identifier for stable output.
func (e *Exporter) collect() []entry {
	roles := make(map[string]string)
	for _, logged := range e.log.Entries() {
		if logged.ID != "" && logged.Role != "" {
			roles[logged.ID] = logged.Role
		}
	}

	ids := e.registry.Identifiers()
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, entry{ID: id, Role: roles[id]})
	}
	return entries
}

package autoid_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	autoid "github.com/schatt/sixlayer-autoid"
	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/export"
)

func TestWithMeterProvider(t *testing.T) {
	t.Run("generation records metrics without affecting output", func(t *testing.T) {
		meterProvider := noop.NewMeterProvider()

		engine := newEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "test"},
			autoid.WithMeterProvider(meterProvider))
		ctx := context.Background()

		// Instrumented generation must produce the same identifiers as
		// uninstrumented generation, collisions included.
		id := engine.Generate(ctx, "user-1", "item", "")
		assert.Equal(t, "test.main.item.user-1", id)
		assert.Equal(t, id, engine.Generate(ctx, "user-1", "item", ""))
	})

	t.Run("nil provider leaves instrumentation off", func(t *testing.T) {
		engine := newEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "test"},
			autoid.WithMeterProvider(nil))

		id := engine.Generate(context.Background(), "user-1", "item", "")
		assert.Equal(t, "test.main.item.user-1", id)
	})
}

func TestWithTracer(t *testing.T) {
	t.Run("file export emits a span", func(t *testing.T) {
		spanRecorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder))
		defer tp.Shutdown(context.Background())

		engine := newEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "test"},
			autoid.WithTracer(tp.Tracer("test")))
		ctx := context.Background()

		engine.Generate(ctx, "user-1", "item", "")

		path := filepath.Join(t.TempDir(), "out.txt")
		_, err := engine.ExportToFile(ctx, export.FormatText, path)
		require.NoError(t, err)

		spans := spanRecorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "autoid.export.file", spans[0].Name())

		attrs := make(map[string]string)
		for _, kv := range spans[0].Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsString()
		}
		assert.Equal(t, "text", attrs["export.format"])
		assert.Equal(t, path, attrs["export.path"])
	})

	t.Run("no tracer means no spans and no failures", func(t *testing.T) {
		engine := newEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "test"})
		ctx := context.Background()

		engine.Generate(ctx, "user-1", "item", "")
		_, err := engine.ExportToFile(ctx, export.FormatText, filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
	})
}

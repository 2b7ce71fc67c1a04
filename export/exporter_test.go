package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schatt/sixlayer-autoid/debuglog"
	"github.com/schatt/sixlayer-autoid/ident"
)

// populated returns an exporter whose registry holds a button, a text
// field with logged roles, and one registry-only identifier.
func populated(opts ...ExporterOption) *Exporter {
	registry := ident.NewRegistry()
	log := debuglog.New()

	for id, role := range map[string]string{
		"app.main.button.save":     "button",
		"app.main.textfield.email": "textfield",
	} {
		registry.Add(id)
		log.Record(debuglog.Entry{Time: time.Now(), Subject: id, Role: role, ID: id})
	}
	registry.Add("app.main.ui.banner")

	return NewExporter(registry, log, opts...)
}

func emptyExporter() *Exporter {
	return NewExporter(ident.NewRegistry(), debuglog.New())
}

func TestRenderNothingToExport(t *testing.T) {
	e := emptyExporter()

	for _, format := range AllFormats() {
		content, err := e.Render(context.Background(), format)
		require.NoError(t, err, "format %s", format)
		assert.Empty(t, content, "format %s", format)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := populated().Render(context.Background(), Format("espresso"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderXCUITest(t *testing.T) {
	content, err := populated(WithSession("sess-1")).Render(context.Background(), FormatXCUITest)
	require.NoError(t, err)

	assert.Contains(t, content, "import XCTest")
	assert.Contains(t, content, "Session: sess-1")

	// Role-bearing identifiers get lookup plus action.
	assert.Contains(t, content, `app.buttons["app.main.button.save"].waitForExistence`)
	assert.Contains(t, content, `app.buttons["app.main.button.save"].tap()`)
	assert.Contains(t, content, `app.textFields["app.main.textfield.email"].typeText`)

	// Registry-only identifiers fall back to a lookup-only statement.
	assert.Contains(t, content, `app.otherElements["app.main.ui.banner"].waitForExistence`)
	assert.NotContains(t, content, `app.otherElements["app.main.ui.banner"].tap()`)

	// Well-formed source: braces balance.
	assert.Equal(t, strings.Count(content, "{"), strings.Count(content, "}"))
}

func TestRenderJSONManifest(t *testing.T) {
	content, err := populated(WithSession("sess-2")).Render(context.Background(), FormatJSON)
	require.NoError(t, err)

	var payload struct {
		Session     string `json:"session"`
		Count       int    `json:"count"`
		Identifiers []struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"identifiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(content), &payload))

	assert.Equal(t, "sess-2", payload.Session)
	assert.Equal(t, 3, payload.Count)
	require.Len(t, payload.Identifiers, 3)

	// Sorted by identifier, roles recovered from the debug log.
	assert.Equal(t, "app.main.button.save", payload.Identifiers[0].ID)
	assert.Equal(t, "button", payload.Identifiers[0].Role)
	assert.Equal(t, "app.main.ui.banner", payload.Identifiers[2].ID)
	assert.Empty(t, payload.Identifiers[2].Role)
}

func TestRenderText(t *testing.T) {
	content, err := populated().Render(context.Background(), FormatText)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	assert.Equal(t, []string{
		"app.main.button.save",
		"app.main.textfield.email",
		"app.main.ui.banner",
	}, lines)
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated_test.swift")

	got, err := populated().ExportToFile(context.Background(), FormatXCUITest, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "import XCTest")
	assert.NotEmpty(t, data)
}

func TestExportToFileDefaultPath(t *testing.T) {
	path, err := populated(WithSession("sess-3")).ExportToFile(context.Background(), FormatText, "")
	require.NoError(t, err)
	require.NotEmpty(t, path)
	t.Cleanup(func() { os.Remove(path) })

	assert.True(t, strings.HasPrefix(path, os.TempDir()))
	assert.True(t, strings.HasSuffix(path, ".txt"))
	assert.Contains(t, path, "sess-3")
}

func TestExportToFileNothingToExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "never_written.swift")

	got, err := emptyExporter().ExportToFile(context.Background(), FormatXCUITest, path)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created")
}

func TestExportToClipboard(t *testing.T) {
	var captured string
	original := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		captured = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = original })

	require.NoError(t, populated().ExportToClipboard(context.Background(), FormatText))
	assert.Contains(t, captured, "app.main.button.save")
}

func TestExportToClipboardCustomWriter(t *testing.T) {
	var captured string
	e := populated(WithClipboardWriter(func(s string) error {
		captured = s
		return nil
	}))

	require.NoError(t, e.ExportToClipboard(context.Background(), FormatText))
	assert.Contains(t, captured, "app.main.textfield.email")
}

func TestExportToClipboardUnavailable(t *testing.T) {
	original := clipboardWriteAll
	clipboardWriteAll = func(string) error {
		return errors.New("no display")
	}
	t.Cleanup(func() { clipboardWriteAll = original })

	err := populated().ExportToClipboard(context.Background(), FormatText)
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
}

func TestExportToClipboardNothingToExport(t *testing.T) {
	original := clipboardWriteAll
	clipboardWriteAll = func(string) error {
		t.Error("clipboard touched with nothing to export")
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = original })

	assert.NoError(t, emptyExporter().ExportToClipboard(context.Background(), FormatText))
}

func TestSwiftEscape(t *testing.T) {
	registry := ident.NewRegistry()
	registry.Add(`exact "quoted" name`)

	content, err := NewExporter(registry, debuglog.New()).Render(context.Background(), FormatXCUITest)
	require.NoError(t, err)
	assert.Contains(t, content, `\"quoted\"`)
}

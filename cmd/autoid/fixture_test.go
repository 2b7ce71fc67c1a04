package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	autoid "github.com/schatt/sixlayer-autoid"
	"github.com/schatt/sixlayer-autoid/config"
)

func testEngine(t *testing.T, cfg config.Configuration) *autoid.Engine {
	t.Helper()
	engine, err := autoid.New(
		autoid.WithConfig(cfg),
		autoid.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return engine
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, `
screen: Fuel Entry
navigation: "tab:vehicles > Fuel Entry"
tree:
  name: Fuel Form
  children:
    - subject: save
      role: button
`)

	f, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if f.Screen != "Fuel Entry" {
		t.Errorf("screen = %q, want %q", f.Screen, "Fuel Entry")
	}
	if f.Navigation != "tab:vehicles > Fuel Entry" {
		t.Errorf("navigation = %q", f.Navigation)
	}
	if f.Tree == nil {
		t.Fatal("tree not decoded")
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	if _, err := loadFixture(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := loadFixture(writeFixture(t, "tree: [not: {a map")); err == nil {
		t.Error("expected error for malformed YAML")
	}

	if _, err := loadFixture(writeFixture(t, "screen: Login\n")); err == nil {
		t.Error("expected error for fixture without a tree")
	}
}

func TestWalk(t *testing.T) {
	engine := testEngine(t, config.Configuration{
		EnableAutoIDs:               true,
		Namespace:                   "fuelapp",
		EnableViewHierarchyTracking: true,
		IncludeComponentNames:       true,
	})

	path := writeFixture(t, `
screen: Fuel Entry
navigation: "tab:vehicles > Fuel Entry"
tree:
  name: Fuel Form
  children:
    - subject: amount
      role: textfield
    - subject: save
      role: button
    - id: manual-cancel
    - subject: debug-panel
      role: container
      disable: true
`)
	f, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}

	rows := walk(context.Background(), engine, f)
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	want := []struct {
		label    string
		id       string
		attached bool
	}{
		{"Fuel Form", "fuelapp.fuel-entry.ui.fuel-form", true},
		{"amount", "fuelapp.fuel-entry.fuel-form.textfield.amount", true},
		{"save", "fuelapp.fuel-entry.fuel-form.button.save", true},
		{"manual-cancel", "manual-cancel", true},
		{"debug-panel", "", false},
	}
	for i, w := range want {
		if rows[i].Label != w.label {
			t.Errorf("row %d label = %q, want %q", i, rows[i].Label, w.label)
		}
		if rows[i].ID != w.id {
			t.Errorf("row %d id = %q, want %q", i, rows[i].ID, w.id)
		}
		if rows[i].Attached != w.attached {
			t.Errorf("row %d attached = %t, want %t", i, rows[i].Attached, w.attached)
		}
	}

	if got := countAttached(rows); got != 4 {
		t.Errorf("countAttached = %d, want 4", got)
	}

	// The walk popped every frame it pushed.
	if !engine.Tracker().IsEmpty() {
		t.Error("tracker still holds frames after the walk")
	}
}

func TestWalkOverrideGovernsSubtree(t *testing.T) {
	engine := testEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "app"})

	path := writeFixture(t, `
tree:
  name: Settings
  override: "off"
  children:
    - subject: toggle
      role: switch
    - subject: forced
      role: button
      enable: true
`)
	f, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}

	rows := walk(context.Background(), engine, f)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// The override suppresses the container and the plain child; the
	// node-local enable still wins over the ambient override.
	if rows[0].Attached || rows[1].Attached {
		t.Errorf("override did not suppress subtree: %+v", rows[:2])
	}
	if !rows[2].Attached {
		t.Error("node-local enable lost to the ambient override")
	}
}

func TestWalkSkipsStructuralNodes(t *testing.T) {
	engine := testEngine(t, config.Configuration{EnableAutoIDs: true, Namespace: "app"})

	path := writeFixture(t, `
tree:
  children:
    - subject: save
      role: button
`)
	f, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}

	rows := walk(context.Background(), engine, f)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (structural root skipped)", len(rows))
	}
	if rows[0].Label != "save" {
		t.Errorf("row label = %q, want save", rows[0].Label)
	}
}

func TestBuildEngineCascade(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "autoid.yaml")
	if err := os.WriteFile(file, []byte("autoid:\n  enable_auto_ids: true\n  namespace: fromfile\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	defer func() { configPath, namespace, prefix, modeName = "", "", "", "" }()

	configPath = file
	namespace = ""
	engine, err := buildEngine()
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	if got := engine.Config(context.Background()).Namespace; got != "fromfile" {
		t.Errorf("namespace = %q, want fromfile", got)
	}

	// Env overrides the file.
	t.Setenv(config.EnvNamespace, "fromenv")
	engine, err = buildEngine()
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	if got := engine.Config(context.Background()).Namespace; got != "fromenv" {
		t.Errorf("namespace = %q, want fromenv", got)
	}

	// The flag overrides both.
	namespace = "fromflag"
	modeName = "semantic"
	engine, err = buildEngine()
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	cfg := engine.Config(context.Background())
	if cfg.Namespace != "fromflag" {
		t.Errorf("namespace = %q, want fromflag", cfg.Namespace)
	}
	if cfg.Mode != config.ModeSemantic {
		t.Errorf("mode = %q, want semantic", cfg.Mode)
	}

	// An unknown mode is rejected.
	modeName = "chaotic"
	if _, err := buildEngine(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeIsValid(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want bool
	}{
		{"automatic", ModeAutomatic, true},
		{"semantic", ModeSemantic, true},
		{"empty", Mode(""), false},
		{"unknown", Mode("minimal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.IsValid())
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("semantic")
	require.NoError(t, err)
	assert.Equal(t, ModeSemantic, mode)

	_, err = ParseMode("bogus")
	assert.Error(t, err)
}

func TestAllModes(t *testing.T) {
	modes := AllModes()
	assert.Len(t, modes, 2)
	for _, m := range modes {
		assert.True(t, m.IsValid())
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.EnableAutoIDs)
	assert.Empty(t, cfg.Namespace)
	assert.Equal(t, ModeAutomatic, cfg.Mode)
	assert.False(t, cfg.EnableViewHierarchyTracking)
	assert.False(t, cfg.EnableUITestIntegration)
	assert.False(t, cfg.EnableDebugLogging)
	assert.Empty(t, cfg.GlobalPrefix)
	assert.False(t, cfg.IncludeComponentNames)
	assert.False(t, cfg.IncludeElementTypes)
}

func TestNormalizeFallsBackToAutomatic(t *testing.T) {
	cfg := Configuration{Mode: Mode("nonsense")}.Normalize()
	assert.Equal(t, ModeAutomatic, cfg.Mode)

	cfg = Configuration{}.Normalize()
	assert.Equal(t, ModeAutomatic, cfg.Mode)

	cfg = Configuration{Mode: ModeSemantic}.Normalize()
	assert.Equal(t, ModeSemantic, cfg.Mode)
}

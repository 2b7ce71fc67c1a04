// Package config holds the identifier-generation policy: the Configuration
// data model, the Store that resolves scoped overrides against the
// process-wide instance, YAML file loading, environment overrides, and an
// optional file watcher for live reload.
package config

import "fmt"

// Mode selects the naming strategy used when deriving identifiers.
type Mode string

const (
	// ModeAutomatic derives role-centric identifiers of the form
	// namespace.screen.role.subject.
	ModeAutomatic Mode = "automatic"

	// ModeSemantic promotes the caller-supplied context qualifier into the
	// identifier and includes the role only when element types are enabled.
	ModeSemantic Mode = "semantic"
)

// IsValid returns true if the mode is a recognized naming strategy.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAutomatic, ModeSemantic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a string into a Mode value.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %s", s)
	}
	return mode, nil
}

// AllModes returns all valid naming modes.
func AllModes() []Mode {
	return []Mode{
		ModeAutomatic,
		ModeSemantic,
	}
}

// Configuration is the complete identifier-generation policy. One
// process-wide instance lives in a Store; a scoped copy can shadow it for
// the duration of a unit of work (see NewContext).
//
// Generation code must read the active Configuration through Store.Get on
// every call. Values are never cached across calls: tests change the
// configuration mid-sequence and expect the next identifier to reflect it.
type Configuration struct {
	// EnableAutoIDs is the master switch for automatic identifier
	// generation.
	EnableAutoIDs bool `yaml:"enable_auto_ids"`

	// Namespace is the top-level prefix shared by every identifier this
	// instance produces. It should be non-empty while EnableAutoIDs is
	// true; an empty namespace degrades the identifier (the segment is
	// omitted) but never fails generation.
	Namespace string `yaml:"namespace"`

	// Mode selects the naming strategy.
	Mode Mode `yaml:"mode"`

	// EnableViewHierarchyTracking lets pushed hierarchy frames contribute
	// a qualifier segment to generated identifiers.
	EnableViewHierarchyTracking bool `yaml:"enable_view_hierarchy_tracking"`

	// EnableUITestIntegration pins the screen context to "main" so
	// identifiers stay stable regardless of real navigation state.
	EnableUITestIntegration bool `yaml:"enable_ui_test_integration"`

	// EnableDebugLogging records every generation event in the debug log.
	EnableDebugLogging bool `yaml:"enable_debug_logging"`

	// GlobalPrefix, when set, is prepended ahead of the namespace.
	GlobalPrefix string `yaml:"global_prefix"`

	// IncludeComponentNames lets the innermost hierarchy frame appear as a
	// segment. Only effective while EnableViewHierarchyTracking is true.
	IncludeComponentNames bool `yaml:"include_component_names"`

	// IncludeElementTypes keeps the role segment in semantic mode. The
	// automatic mode always carries a role segment.
	IncludeElementTypes bool `yaml:"include_element_types"`
}

// Default returns the documented default configuration: auto IDs enabled,
// empty namespace, automatic mode, every other toggle off.
func Default() Configuration {
	return Configuration{
		EnableAutoIDs: true,
		Mode:          ModeAutomatic,
	}
}

// Normalize fills in zero values that have documented defaults. An
// unrecognized or empty mode falls back to ModeAutomatic rather than
// failing; configuration defects degrade, they do not abort.
func (c Configuration) Normalize() Configuration {
	if !c.Mode.IsValid() {
		c.Mode = ModeAutomatic
	}
	return c
}

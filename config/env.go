package config

import (
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvEnableAutoIDs         = "AUTOID_ENABLE_AUTO_IDS"
	EnvNamespace             = "AUTOID_NAMESPACE"
	EnvMode                  = "AUTOID_MODE"
	EnvHierarchyTracking     = "AUTOID_ENABLE_VIEW_HIERARCHY_TRACKING"
	EnvUITestIntegration     = "AUTOID_ENABLE_UI_TEST_INTEGRATION"
	EnvDebugLogging          = "AUTOID_ENABLE_DEBUG_LOGGING"
	EnvGlobalPrefix          = "AUTOID_GLOBAL_PREFIX"
	EnvIncludeComponentNames = "AUTOID_INCLUDE_COMPONENT_NAMES"
	EnvIncludeElementTypes   = "AUTOID_INCLUDE_ELEMENT_TYPES"
)

// ApplyEnv applies AUTOID_* environment variable overrides on top of cfg
// and returns the result. Unset variables leave the field untouched;
// malformed values are skipped. Nothing here is fatal.
func ApplyEnv(cfg Configuration) Configuration {
	if v := os.Getenv(EnvEnableAutoIDs); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableAutoIDs = b
		}
	}
	if v := os.Getenv(EnvNamespace); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		if mode, err := ParseMode(v); err == nil {
			cfg.Mode = mode
		}
	}
	if v := os.Getenv(EnvHierarchyTracking); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableViewHierarchyTracking = b
		}
	}
	if v := os.Getenv(EnvUITestIntegration); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableUITestIntegration = b
		}
	}
	if v := os.Getenv(EnvDebugLogging); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableDebugLogging = b
		}
	}
	if v := os.Getenv(EnvGlobalPrefix); v != "" {
		cfg.GlobalPrefix = v
	}
	if v := os.Getenv(EnvIncludeComponentNames); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeComponentNames = b
		}
	}
	if v := os.Getenv(EnvIncludeElementTypes); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeElementTypes = b
		}
	}
	return cfg.Normalize()
}

// Package input provides type-safe helpers for reading fields out of
// decoded fixture nodes.
//
// UI-tree fixtures are YAML files decoded into map[string]any, where every
// field access is a type assertion: strings may be missing, flags may be
// misspelled, children may be absent. These helpers centralize the
// assertions so traversal code reads cleanly. All functions gracefully
// handle type mismatches by returning defaults rather than erroring.
//
// # Key Features
//
//   - Type-safe extraction from decoded YAML nodes
//   - Nil-safe operations (handles nil maps and values)
//   - No panics or errors - always returns defaults on mismatch
//   - Handles both []any and typed slices for sequence fields
//
// # Usage
//
// Extract the fields of one fixture node:
//
//	node := map[string]any{
//	    "subject":  "save",
//	    "role":     "button",
//	    "disable":  false,
//	    "tags":     []any{"form", "primary"},
//	    "children": []any{map[string]any{"subject": "icon"}},
//	}
//
//	subject := input.GetString(node, "subject", "")
//	role := input.GetString(node, "role", "")
//	disabled := input.GetBool(node, "disable", false)
//	tags := input.GetStringSlice(node, "tags")
//	children := input.GetMaps(node, "children")
//
// # Design Philosophy
//
// Fixtures are written by hand, so the package is liberal in what it
// accepts: a bare string where a list was expected becomes a one-element
// slice, unknown fields are simply never read, and a malformed field reads
// as its default instead of failing the whole traversal. Structural
// problems worth reporting (a child that is not a map) are for the caller
// to detect; these helpers only decode.
package input

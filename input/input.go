// Package input provides type-safe helpers for reading fields out of
// decoded fixture nodes (map[string]any).
//
// Fixture trees arrive as YAML decoded into map[string]any, so every field
// access is a type assertion. These helpers centralize the assertions:
// they return sensible defaults on type mismatch and handle nil maps
// gracefully, so traversal code never branches on decoding quirks.
package input

import "fmt"

// GetString extracts a string field from the node with a default fallback.
// Returns defaultVal if the key doesn't exist, the value is nil, or not a
// string.
func GetString(node map[string]any, key string, defaultVal string) string {
	if node == nil {
		return defaultVal
	}

	val, ok := node[key]
	if !ok || val == nil {
		return defaultVal
	}

	str, ok := val.(string)
	if !ok {
		return defaultVal
	}

	return str
}

// GetBool extracts a bool field from the node with a default fallback.
// Returns defaultVal if the key doesn't exist, the value is nil, or not a
// bool. The string "true" is not coerced; fixture flags must be YAML
// booleans.
func GetBool(node map[string]any, key string, defaultVal bool) bool {
	if node == nil {
		return defaultVal
	}

	val, ok := node[key]
	if !ok || val == nil {
		return defaultVal
	}

	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}

	return b
}

// GetStringSlice extracts a []string field from the node.
// Handles []string, []any (converting each element to a string), and a
// bare string (wrapped in a one-element slice).
// Returns nil if the key doesn't exist, the value is nil, or cannot be
// converted.
func GetStringSlice(node map[string]any, key string) []string {
	if node == nil {
		return nil
	}

	val, ok := node[key]
	if !ok || val == nil {
		return nil
	}

	if slice, ok := val.([]string); ok {
		return slice
	}

	// YAML sequences decode as []any; convert each element.
	if slice, ok := val.([]any); ok {
		result := make([]string, 0, len(slice))
		for _, item := range slice {
			if item == nil {
				continue
			}
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	}

	if str, ok := val.(string); ok {
		return []string{str}
	}

	return nil
}

// GetMap extracts a nested node from the node.
// Returns nil if the key doesn't exist, the value is nil, or not a map.
func GetMap(node map[string]any, key string) map[string]any {
	if node == nil {
		return nil
	}

	val, ok := node[key]
	if !ok || val == nil {
		return nil
	}

	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}

	return nested
}

// GetMaps extracts a list of nested nodes from the node, the shape of a
// fixture's "children" field. Handles []map[string]any directly and []any
// whose elements are maps; non-map elements are skipped.
// Returns nil if the key doesn't exist, the value is nil, or not a list.
func GetMaps(node map[string]any, key string) []map[string]any {
	if node == nil {
		return nil
	}

	val, ok := node[key]
	if !ok || val == nil {
		return nil
	}

	if maps, ok := val.([]map[string]any); ok {
		return maps
	}

	list, ok := val.([]any)
	if !ok {
		return nil
	}

	result := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if nested, ok := item.(map[string]any); ok {
			result = append(result, nested)
		}
	}
	return result
}

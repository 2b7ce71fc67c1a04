package input_test

import (
	"fmt"

	"github.com/schatt/sixlayer-autoid/input"
)

// Example demonstrates reading the fields of one decoded fixture node.
func Example() {
	// Simulate a YAML fixture node decoded into map[string]any
	node := map[string]any{
		"subject": "save",
		"role":    "button",
		"disable": false,
		"tags":    []any{"form", "primary"},
		"children": []any{
			map[string]any{"subject": "icon", "role": "image"},
		},
	}

	subject := input.GetString(node, "subject", "")
	role := input.GetString(node, "role", "")
	disabled := input.GetBool(node, "disable", false)
	tags := input.GetStringSlice(node, "tags")
	children := input.GetMaps(node, "children")

	fmt.Printf("Subject: %s\n", subject)
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("Disabled: %t\n", disabled)
	fmt.Printf("Tags: %v\n", tags)
	fmt.Printf("Children: %d\n", len(children))

	// Output:
	// Subject: save
	// Role: button
	// Disabled: false
	// Tags: [form primary]
	// Children: 1
}

// ExampleGetMaps demonstrates extracting child nodes from a fixture tree.
func ExampleGetMaps() {
	node := map[string]any{
		"name": "Fuel Form",
		"children": []any{
			map[string]any{"subject": "amount", "role": "textfield"},
			map[string]any{"subject": "save", "role": "button"},
			"stray scalar", // skipped: not a node
		},
	}

	for _, child := range input.GetMaps(node, "children") {
		fmt.Printf("%s (%s)\n",
			input.GetString(child, "subject", "?"),
			input.GetString(child, "role", "?"))
	}

	// Output:
	// amount (textfield)
	// save (button)
}

// ExampleGetStringSlice demonstrates the sequence shapes a fixture field
// may decode to: a typed []string, the []any YAML produces (mixed types
// converted, nil elements filtered), and a bare string wrapped in a slice.
func ExampleGetStringSlice() {
	nodes := []map[string]any{
		{"tags": []string{"a", "b", "c"}},
		{"tags": []any{"x", "y", "z"}},
		{"tags": []any{"str", 123, true}},
		{"tags": "single"},
		{"tags": []any{"a", nil, "b"}},
	}

	for _, node := range nodes {
		fmt.Printf("%v\n", input.GetStringSlice(node, "tags"))
	}

	// Output:
	// [a b c]
	// [x y z]
	// [str 123 true]
	// [single]
	// [a b]
}

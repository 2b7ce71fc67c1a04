package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	autoid "github.com/schatt/sixlayer-autoid"
	"github.com/schatt/sixlayer-autoid/input"
	"github.com/schatt/sixlayer-autoid/resolve"
)

// fixture is a decoded YAML tree fixture: an optional screen label and
// navigation state, plus the root node of the tree under "tree".
//
// Node fields, all optional, all read leniently:
//
//	id:       explicit literal identifier, wins over everything
//	exact:    exact-name bypass, returned unsanitized
//	name:     declared name, replaces subject as the naming source
//	subject:  stable content-derived token
//	role:     element kind ("button", "textfield", ...)
//	context:  extra qualifier for the semantic mode
//	disable:  node-local opt-out
//	enable:   node-local opt-in
//	override: "on" or "off", ambient override for the node and its subtree
//	children: nested nodes
type fixture struct {
	Screen     string
	Navigation string
	Tree       map[string]any
}

// loadFixture reads and decodes a YAML tree fixture from path.
func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	f := &fixture{
		Screen:     input.GetString(raw, "screen", ""),
		Navigation: input.GetString(raw, "navigation", ""),
		Tree:       input.GetMap(raw, "tree"),
	}
	if f.Tree == nil {
		return nil, fmt.Errorf("fixture %s has no tree", path)
	}
	return f, nil
}

// row is one resolved node of the fixture tree.
type row struct {
	Label    string
	Role     string
	ID       string
	Attached bool
}

// walk resolves every node of the fixture tree in document order,
// maintaining the hierarchy tracker the way a real traversal would: push a
// frame when descending into a container, pop when ascending.
func walk(ctx context.Context, engine *autoid.Engine, f *fixture) []row {
	if f.Screen != "" {
		engine.SetScreenContext(f.Screen)
	}
	if f.Navigation != "" {
		engine.SetNavigationState(f.Navigation)
	}
	return walkNode(ctx, engine, f.Tree)
}

func walkNode(ctx context.Context, engine *autoid.Engine, raw map[string]any) []row {
	node := resolve.Node{
		ExplicitID: input.GetString(raw, "id", ""),
		Disable:    input.GetBool(raw, "disable", false),
		Enable:     input.GetBool(raw, "enable", false),
		ExactName:  input.GetString(raw, "exact", ""),
		Name:       input.GetString(raw, "name", ""),
		Subject:    input.GetString(raw, "subject", ""),
		Role:       input.GetString(raw, "role", ""),
		Context:    input.GetString(raw, "context", ""),
	}

	// An override on a node governs the node and everything below it.
	if o := resolve.Override(input.GetString(raw, "override", "")); o.IsValid() {
		ctx = resolve.WithOverride(ctx, o)
	}

	var rows []row
	if !structural(node) {
		id, attached := engine.Resolve(ctx, node)
		rows = append(rows, row{Label: nodeLabel(node), Role: node.Role, ID: id, Attached: attached})
	}

	if children := input.GetMaps(raw, "children"); len(children) > 0 {
		if frame := frameLabel(node); frame != "" {
			engine.PushFrame(frame)
			defer engine.PopFrame()
		}
		for _, child := range children {
			rows = append(rows, walkNode(ctx, engine, child)...)
		}
	}
	return rows
}

// structural reports whether the node carries no naming signal at all: a
// pure grouping node that should not be resolved.
func structural(node resolve.Node) bool {
	return node.ExplicitID == "" && node.ExactName == "" &&
		node.Name == "" && node.Subject == ""
}

// nodeLabel is the table label for a node: its subject, falling back
// through the other naming sources.
func nodeLabel(node resolve.Node) string {
	for _, s := range []string{node.Subject, node.Name, node.ExactName, node.ExplicitID} {
		if s != "" {
			return s
		}
	}
	return ""
}

// frameLabel is what a container contributes to the hierarchy: its
// declared name, else its subject.
func frameLabel(node resolve.Node) string {
	if node.Name != "" {
		return node.Name
	}
	return node.Subject
}

func countAttached(rows []row) int {
	n := 0
	for _, r := range rows {
		if r.Attached {
			n++
		}
	}
	return n
}

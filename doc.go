// Package autoid assigns stable, human-traceable identifiers to nodes in
// a declaratively-built UI tree so automated UI tests can locate elements
// reliably across builds, platforms, and app restarts.
//
// The package is the identifier generation and configuration cascade
// engine: it holds layered, overridable configuration, tracks where a
// traversal currently is inside the tree, deterministically derives an
// identifier string per node, detects collisions, and can export every
// identifier produced so far as ready-to-use automated-test snippets.
// Rendering, layout, and the traversal itself are the host framework's
// business; this engine only answers "what identifier does this node
// get, if any".
//
// # Core Concepts
//
// The engine is organized around six collaborators, each its own package:
//
//   - config: the Configuration policy and the Store that resolves a
//     context-scoped override against the process-wide instance
//   - hierarchy: the frame stack and screen context a traversal maintains
//     while walking the tree
//   - ident: deterministic identifier derivation, sanitization, and the
//     run-scoped collision registry
//   - resolve: the per-node assignment cascade deciding whether an
//     identifier is attached at all
//   - debuglog: a bounded, ordered, clearable record of generation events
//   - export: rendering identifiers into test scripts, written to a file
//     or the system clipboard
//
// # Getting Started
//
// Build an engine, configure a namespace, and resolve nodes as the
// traversal visits them:
//
//	engine, err := autoid.New(
//	    autoid.WithConfig(config.Configuration{
//	        EnableAutoIDs: true,
//	        Namespace:     "fuelapp",
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine.PushFrame("Fuel Form")
//	id, attached := engine.Resolve(ctx, resolve.Node{
//	    Subject: "save",
//	    Role:    "button",
//	})
//	engine.PopFrame()
//
// # Determinism
//
// The same configuration, hierarchy state, and node hints always produce
// the same identifier, across call orders, runs, and process restarts.
// Naming inputs must derive from caller-stable content (declared names,
// data identifiers, label text); anything resembling a timestamp or a
// memory address would silently break reproducibility and is never used.
//
// # The Assignment Cascade
//
// Whether a node receives an automatic identifier follows one precedence
// order, highest first:
//
//   - an explicit literal identifier set directly on the node
//   - a node-local disable declaration
//   - a node-local enable declaration, optionally with an exact name
//   - an ambient override threaded down a subtree via context
//   - the global EnableAutoIDs flag
//
// A node-local enable produces an identifier even when the global flag is
// off; a node-local disable suppresses one even when the global flag is
// on.
//
// # Scoped Configuration
//
// Parallel units of work (one test case each) install their own
// configuration with config.NewContext; every read through the store
// resolves the scoped value first, so concurrent callers never clobber
// each other's namespace or flags:
//
//	ctx := config.NewContext(ctx, config.Configuration{
//	    EnableAutoIDs: true,
//	    Namespace:     "case-a",
//	})
//	id, _ := engine.Resolve(ctx, node)
//
// # Error Handling
//
// Nothing in this engine aborts the host. Configuration defects degrade
// (an empty namespace omits the segment), hierarchy imbalance is silently
// absorbed, exporting with nothing to export returns an empty result, and
// collisions are reported through a boolean query. Operations that can
// genuinely fail (file loads, exports) return a structured *Error carrying
// the operation and failure kind:
//
//	if err := engine.LoadConfigFile(path); err != nil {
//	    if errors.Is(err, autoid.ErrConfigNotFound) {
//	        // run with defaults
//	    }
//	}
//
// # Thread Safety
//
// All engine methods are safe for concurrent use. The store, tracker,
// registry, and debug log are internally synchronized; debug-log entries
// appear in the order their generation calls completed.
//
// # Examples
//
// See the examples directory for a complete runnable traversal, and
// cmd/autoid for a CLI that previews and exports identifiers for YAML
// tree fixtures.
package autoid

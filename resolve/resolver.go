// Package resolve is the policy layer of identifier assignment: it
// decides, per UI node, whether an identifier is attached at all and
// which naming source it uses. The mechanism layer (package ident) only
// runs when this package says so.
package resolve

import (
	"context"
	"log/slog"

	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/ident"
)

// Override is the ambient signal a traversal can thread down a subtree to
// force automatic identifiers on or off below a point, regardless of the
// global flag.
type Override string

const (
	// OverrideOn forces automatic identifiers on for the subtree.
	OverrideOn Override = "on"

	// OverrideOff forces automatic identifiers off for the subtree.
	OverrideOff Override = "off"
)

// IsValid returns true if the override is a recognized value.
func (o Override) IsValid() bool {
	switch o {
	case OverrideOn, OverrideOff:
		return true
	default:
		return false
	}
}

// String returns the string representation of the override.
func (o Override) String() string {
	return string(o)
}

// overrideKey is the context key type for ambient overrides.
type overrideKey struct{}

// WithOverride returns a context carrying the ambient override. Traversal
// code installs it when descending into a subtree and simply stops using
// the derived context when ascending; nothing is ever looked up globally.
func WithOverride(ctx context.Context, o Override) context.Context {
	return context.WithValue(ctx, overrideKey{}, o)
}

// OverrideFromContext returns the ambient override installed on ctx, if
// any.
func OverrideFromContext(ctx context.Context) (Override, bool) {
	if ctx == nil {
		return "", false
	}
	o, ok := ctx.Value(overrideKey{}).(Override)
	return o, ok
}

// Node carries every per-node signal the cascade considers, plus the
// naming hints handed to the generator when the decision is "generate".
type Node struct {
	// ExplicitID is a literal identifier set directly on the node. It
	// always wins and is never routed through the generator.
	ExplicitID string

	// Disable is the node-local opt-out. It suppresses generation even
	// when the global flag is on.
	Disable bool

	// Enable is the node-local opt-in. It produces an identifier even
	// when the global flag is off.
	Enable bool

	// ExactName, when set on an enabled node, routes through the
	// exact-name bypass: the identifier is ExactName unchanged.
	ExactName string

	// Name is a declared name. When set it replaces Subject as the
	// naming source.
	Name string

	// Subject is the stable content-derived token for the node.
	Subject string

	// Role is the element kind, e.g. "button", "item", "text".
	Role string

	// Context is the extra qualifier forwarded to the generator.
	Context string
}

// Resolver applies the assignment cascade:
//
//	explicit literal > node-local disable > node-local enable >
//	ambient override > global EnableAutoIDs
//
// in that order, for every combination of signals.
type Resolver struct {
	store  *config.Store
	gen    *ident.Generator
	logger *slog.Logger
}

// ResolverOption configures optional resolver collaborators.
type ResolverOption func(*Resolver)

// WithLogger sets the structured logger used for resolution decisions.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver wires the policy layer to the configuration store it reads
// the global flag from and the generator it invokes on "generate"
// decisions.
func NewResolver(store *config.Store, gen *ident.Generator, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:  store,
		gen:    gen,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve decides the identifier outcome for one node. The returned bool
// reports whether the node ends up with an identifier; when it is false
// the id is empty and the node is left untouched.
func (r *Resolver) Resolve(ctx context.Context, node Node) (string, bool) {
	if node.ExplicitID != "" {
		return node.ExplicitID, true
	}

	if node.Disable {
		r.logger.Debug("automatic identifier suppressed by node-local disable",
			"subject", node.Subject)
		return "", false
	}

	if node.Enable {
		return r.generate(ctx, node), true
	}

	if override, ok := OverrideFromContext(ctx); ok && override.IsValid() {
		if override == OverrideOff {
			r.logger.Debug("automatic identifier suppressed by ambient override",
				"subject", node.Subject)
			return "", false
		}
		return r.generate(ctx, node), true
	}

	if r.store.Get(ctx).EnableAutoIDs {
		return r.generate(ctx, node), true
	}
	return "", false
}

func (r *Resolver) generate(ctx context.Context, node Node) string {
	if node.ExactName != "" {
		return r.gen.GenerateExact(node.ExactName)
	}

	subject := node.Subject
	if node.Name != "" {
		subject = node.Name
	}
	return r.gen.Generate(ctx, ident.Request{
		Subject: subject,
		Role:    node.Role,
		Context: node.Context,
	})
}

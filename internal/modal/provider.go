package modal

import (
	"context"

	"github.com/google/uuid"

	"github.com/muurk/modalctl/internal/logging"
)

type scopeKey struct{}

// scope is one level of ambient configuration. Scopes chain to their
// parent through the context, so lookup always finds the innermost one.
type scope struct {
	id     string
	opts   *Options
	parent *scope
	depth  int
}

// WithConfig returns a context carrying opts as ambient configuration for
// every controller created from it. An inner scope shadows outer ones
// entirely; scopes are never merged with each other.
func WithConfig(ctx context.Context, opts *Options) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	parent := scopeFrom(ctx)
	s := &scope{
		id:     uuid.NewString(),
		opts:   opts,
		parent: parent,
	}
	parentID := ""
	if parent != nil {
		s.depth = parent.depth + 1
		parentID = parent.id
	}
	logging.LogScope(s.id, parentID, s.depth)
	return context.WithValue(ctx, scopeKey{}, s)
}

// ConfigFrom returns the ambient options of the innermost scope, or nil
// outside of any scope.
func ConfigFrom(ctx context.Context) *Options {
	if s := scopeFrom(ctx); s != nil {
		return s.opts
	}
	return nil
}

// ScopeID returns the identity of the innermost scope, or "" outside of
// any scope.
func ScopeID(ctx context.Context) string {
	if s := scopeFrom(ctx); s != nil {
		return s.id
	}
	return ""
}

func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*scope)
	return s
}

// Provider establishes an ambient scope around a subtree.
type Provider struct {
	Options *Options
}

// Render calls children with a context scoped to p.Options and returns
// what it renders.
func (p Provider) Render(ctx context.Context, children func(ctx context.Context) *Node) *Node {
	if children == nil {
		return nil
	}
	return children(WithConfig(ctx, p.Options))
}

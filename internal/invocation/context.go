// Package invocation carries the request-scoped state shared by every
// worker of a resource, and the one-shot completion contract workers use to
// report their outcome.
package invocation

import (
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/vk/relaycore/internal/value"
)

// Context is the invocation-scoped state shared across all workers of a
// single request. It is the only state concurrent workers may share; the
// property bag is safe for concurrent use. Workers that want private keys
// use Scope to namespace them.
type Context struct {
	id string

	mu      sync.RWMutex
	message value.Value

	// props uses sync.Map: the key space stabilizes early while values are
	// written from concurrently running workers (same trade-off as a node
	// state store under a parallel executor).
	props sync.Map
}

// NewContext returns a context stamped with a fresh ULID and carrying the
// inbound message value.
func NewContext(message value.Value) *Context {
	return &Context{
		id:      ulid.Make().String(),
		message: message,
	}
}

// ID returns the invocation's ULID, used for log correlation.
func (c *Context) ID() string { return c.id }

// Message returns the inbound message value.
func (c *Context) Message() value.Value {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.message
}

// SetMessage replaces the inbound message value. Owned by the routing
// layer; workers communicate through properties instead.
func (c *Context) SetMessage(v value.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = v
}

// Value returns the property stored under key.
func (c *Context) Value(key string) (any, bool) {
	return c.props.Load(key)
}

// SetValue stores a property under key.
func (c *Context) SetValue(key string, v any) {
	c.props.Store(key, v)
}

// Scope returns a view of the property bag namespaced to one execution
// unit. Two scopes with different unit names never observe each other's
// keys, which keeps concurrently running workers from corrupting unrelated
// state while still sharing one context.
func (c *Context) Scope(unit string) *Scope {
	return &Scope{ctx: c, prefix: unit + "\x00"}
}

// Scope is a per-unit namespaced view over a Context's property bag.
type Scope struct {
	ctx    *Context
	prefix string
}

// Value returns the scoped property stored under key.
func (s *Scope) Value(key string) (any, bool) {
	return s.ctx.props.Load(s.prefix + key)
}

// SetValue stores a scoped property under key.
func (s *Scope) SetValue(key string, v any) {
	s.ctx.props.Store(s.prefix+key, v)
}

package resource

import (
	"context"

	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/value"
)

// Statement is one executable step in a worker's sequence. Implementations
// run against the shared invocation context; a non-nil error aborts the
// owning worker's remaining statements.
type Statement interface {
	Execute(ctx context.Context, inv *invocation.Context) error
}

// Connection scopes a reference to an externally owned, opaque I/O handle
// to one worker. The core never opens or closes the handle.
type Connection struct {
	Name   string
	Handle any
}

// VariableDecl declares a worker-scoped variable.
type VariableDecl struct {
	Name string
	Type value.TypeSpec
	Init value.Value
}

// Parameter is a typed, named formal argument of a resource. Order matters
// for positional binding at invocation time.
type Parameter struct {
	Name string
	Type value.TypeSpec
}

// Annotation attaches an opaque payload to a resource under a unique name.
type Annotation struct {
	Name    string
	Payload any
}

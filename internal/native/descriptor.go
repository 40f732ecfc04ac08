package native

import (
	"context"

	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/value"
)

// Descriptor identifies exactly one dispatch target and declares its
// signature. Descriptors are immutable once registered.
type Descriptor struct {
	Namespace string
	Name      string
	Args      []value.TypeSpec
	Returns   []value.TypeSpec
	Public    bool
}

// QualifiedName returns the "namespace:name" form used for lookup, logs,
// and metrics.
func (d *Descriptor) QualifiedName() string {
	return d.Namespace + ":" + d.Name
}

// Func is a host implementation bound to a Descriptor. It may read and
// write invocation state through the call and returns zero or more result
// values matching the descriptor's return signature.
type Func func(ctx context.Context, call *Call) ([]value.Value, error)

// Call carries one validated dispatch to a host implementation.
type Call struct {
	inv  *invocation.Context
	args []value.Value
}

// Invocation returns the request-scoped context of the call.
func (c *Call) Invocation() *invocation.Context { return c.inv }

// ArgCount returns the number of actual arguments.
func (c *Call) ArgCount() int { return len(c.args) }

// Arg returns the i-th actual argument. The dispatcher has already
// validated i against the declared arity and the value against the
// declared type.
func (c *Call) Arg(i int) value.Value { return c.args[i] }

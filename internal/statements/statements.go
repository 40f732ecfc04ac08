// Package statements provides the statement implementations the execution
// contract is driven with: plain function steps, native-function calls,
// and spawn/await of named workers. Statement interpretation beyond this
// contract (arithmetic, control flow) lives with the language layer, not
// here.
package statements

import (
	"context"
	"fmt"

	"github.com/vk/relaycore/internal/condition"
	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/resource"
	"github.com/vk/relaycore/internal/value"
)

// Func adapts a plain function to the Statement interface.
type Func func(ctx context.Context, inv *invocation.Context) error

// Execute implements resource.Statement.
func (f Func) Execute(ctx context.Context, inv *invocation.Context) error {
	return f(ctx, inv)
}

// NativeCall dispatches one native function through a registry. Args
// produces the actual argument values from the invocation context; Bind,
// when set, receives the validated results.
type NativeCall struct {
	Registry  *native.Registry
	Namespace string
	Name      string
	Args      func(inv *invocation.Context) ([]value.Value, error)
	Bind      func(inv *invocation.Context, results []value.Value) error
}

// Execute implements resource.Statement. The calling worker suspends until
// the host implementation returns or fails.
func (s *NativeCall) Execute(ctx context.Context, inv *invocation.Context) error {
	var args []value.Value
	if s.Args != nil {
		var err error
		if args, err = s.Args(inv); err != nil {
			return fmt.Errorf("failed to produce arguments for %s:%s: %w", s.Namespace, s.Name, err)
		}
	}
	results, err := s.Registry.Invoke(ctx, inv, s.Namespace, s.Name, args)
	if err != nil {
		return err
	}
	if s.Bind != nil {
		return s.Bind(inv, results)
	}
	return nil
}

// SpawnWorker starts a named worker on its own goroutine and stores its
// completion in the invocation context under Key, for a later AwaitWorker.
type SpawnWorker struct {
	Worker *resource.Worker
	Key    string
}

// Execute implements resource.Statement.
func (s *SpawnWorker) Execute(ctx context.Context, inv *invocation.Context) error {
	inv.SetValue(s.Key, s.Worker.Spawn(ctx, inv))
	return nil
}

// AwaitWorker suspends until the completion stored under Key fires,
// propagating that worker's failure to the awaiting unit.
type AwaitWorker struct {
	Key string
}

// Execute implements resource.Statement.
func (s *AwaitWorker) Execute(ctx context.Context, inv *invocation.Context) error {
	v, ok := inv.Value(s.Key)
	if !ok {
		return condition.New(condition.StructuralViolation, "no spawned worker under key '%s'", s.Key)
	}
	comp, ok := v.(*invocation.Completion)
	if !ok {
		return condition.New(condition.StructuralViolation, "value under key '%s' is not a worker completion", s.Key)
	}
	return comp.Wait(ctx)
}

package native

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/relaycore/internal/condition"
	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/value"
)

// echoRegistry registers test:echo(string) -> string, tracking invocations.
func echoRegistry(invoked *int) *Registry {
	r := NewRegistry()
	r.Register(&Descriptor{
		Namespace: "test",
		Name:      "echo",
		Args:      []value.TypeSpec{value.Spec(value.KindString)},
		Returns:   []value.TypeSpec{value.Spec(value.KindString)},
	}, func(ctx context.Context, call *Call) ([]value.Value, error) {
		if invoked != nil {
			*invoked++
		}
		return []value.Value{call.Arg(0)}, nil
	})
	return r
}

func TestInvoke_Success(t *testing.T) {
	r := echoRegistry(nil)
	inv := invocation.NewContext(value.Value{})

	results, err := r.Invoke(context.Background(), inv, "test", "echo", []value.Value{value.StringVal("hi")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	s, err := results[0].AsString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestInvoke_UnknownFunction(t *testing.T) {
	r := NewRegistry()
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "nope", "missing", nil)
	require.Error(t, err)
	assert.Equal(t, condition.StructuralViolation, condition.CodeOf(err))
}

func TestInvoke_ArityMismatchSkipsHost(t *testing.T) {
	var invoked int
	r := echoRegistry(&invoked)
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "echo", nil)
	require.Error(t, err)
	assert.Equal(t, condition.ArityMismatch, condition.CodeOf(err))
	assert.Zero(t, invoked, "host implementation must not run on arity mismatch")
}

func TestInvoke_TypeMismatchSkipsHost(t *testing.T) {
	var invoked int
	r := echoRegistry(&invoked)
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "echo", []value.Value{value.IntVal(1)})
	require.Error(t, err)
	assert.Equal(t, condition.TypeMismatch, condition.CodeOf(err))
	assert.Zero(t, invoked)
}

func TestInvoke_TypeMismatchReportsFirstDivergence(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{
		Namespace: "test",
		Name:      "pair",
		Args: []value.TypeSpec{
			value.Spec(value.KindString),
			value.Spec(value.KindInt),
		},
	}, noop)
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "pair",
		[]value.Value{value.IntVal(1), value.StringVal("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 0")
}

func TestInvoke_ArrayElementTypeChecked(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{
		Namespace: "test",
		Name:      "takeMsgs",
		Args:      []value.TypeSpec{value.ArraySpec(value.KindMessage)},
	}, noop)
	inv := invocation.NewContext(value.Value{})

	ints := value.NewTypedArray(value.KindInt)
	_, err := r.Invoke(context.Background(), inv, "test", "takeMsgs",
		[]value.Value{value.ArrayVal(ints)})
	require.Error(t, err)
	assert.Equal(t, condition.TypeMismatch, condition.CodeOf(err))

	msgs := value.NewTypedArray(value.KindMessage)
	_, err = r.Invoke(context.Background(), inv, "test", "takeMsgs",
		[]value.Value{value.ArrayVal(msgs)})
	assert.NoError(t, err)
}

func TestInvoke_HostErrorWrappedAsExecutionFailure(t *testing.T) {
	r := NewRegistry()
	hostErr := errors.New("connector unreachable")
	r.Register(&Descriptor{Namespace: "test", Name: "boom"},
		func(ctx context.Context, call *Call) ([]value.Value, error) {
			return nil, hostErr
		})
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "boom", nil)
	require.Error(t, err)
	assert.Equal(t, condition.ExecutionFailure, condition.CodeOf(err))
	assert.ErrorIs(t, err, hostErr)
}

func TestInvoke_ReturnSignatureValidated(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{
		Namespace: "test",
		Name:      "liar",
		Returns:   []value.TypeSpec{value.Spec(value.KindInt)},
	}, func(ctx context.Context, call *Call) ([]value.Value, error) {
		return []value.Value{value.StringVal("not an int")}, nil
	})
	r.Register(&Descriptor{
		Namespace: "test",
		Name:      "short",
		Returns:   []value.TypeSpec{value.Spec(value.KindInt)},
	}, noop)
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "liar", nil)
	require.Error(t, err)
	assert.Equal(t, condition.TypeMismatch, condition.CodeOf(err))

	_, err = r.Invoke(context.Background(), inv, "test", "short", nil)
	require.Error(t, err)
	assert.Equal(t, condition.ArityMismatch, condition.CodeOf(err))
}

func TestInvoke_HostReadsAndWritesInvocationState(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{Namespace: "test", Name: "stash"},
		func(ctx context.Context, call *Call) ([]value.Value, error) {
			call.Invocation().SetValue("seen", call.Invocation().ID())
			return nil, nil
		})
	inv := invocation.NewContext(value.Value{})

	_, err := r.Invoke(context.Background(), inv, "test", "stash", nil)
	require.NoError(t, err)
	v, ok := inv.Value("seen")
	require.True(t, ok)
	assert.Equal(t, inv.ID(), v)
}

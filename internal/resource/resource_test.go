package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/value"
)

func TestResource_ScopeOperationsForwardToDefaultWorker(t *testing.T) {
	r := NewResource()

	c := &Connection{Name: "backend"}
	v := &VariableDecl{Name: "count", Type: value.Spec(value.KindInt)}
	s := stmt(func(ctx context.Context, inv *invocation.Context) error { return nil })

	r.AddConnection(c)
	r.AddVariable(v)
	r.AddStatement(s)

	dw := r.DefaultWorker()
	assert.Equal(t, dw.Connections(), r.Connections())
	assert.Equal(t, dw.Variables(), r.Variables())
	assert.Equal(t, dw.Statements(), r.Statements())

	require.Len(t, r.Connections(), 1)
	assert.Same(t, c, r.Connections()[0])
	require.Len(t, r.Variables(), 1)
	assert.Same(t, v, r.Variables()[0])
	require.Len(t, r.Statements(), 1)
}

func TestResource_SettersReplaceDefaultWorkerScope(t *testing.T) {
	r := NewResource()
	r.AddConnection(&Connection{Name: "old"})

	replacement := []*Connection{{Name: "new-a"}, {Name: "new-b"}}
	r.SetConnections(replacement)

	require.Len(t, r.Connections(), 2)
	assert.Equal(t, replacement, r.DefaultWorker().Connections())
}

func TestResource_AnnotationOverwriteByName(t *testing.T) {
	r := NewResource()
	first := &Annotation{Name: "auth", Payload: "basic"}
	second := &Annotation{Name: "auth", Payload: "oauth2"}

	r.AddAnnotation(first)
	r.AddAnnotation(second)

	got := r.Annotation("auth")
	require.NotNil(t, got)
	assert.Same(t, second, got)
	assert.Len(t, r.Annotations(), 1)

	assert.Nil(t, r.Annotation("missing"))
}

func TestResource_ArgumentsKeepBindingOrder(t *testing.T) {
	r := NewResource()
	p1 := &Parameter{Name: "m", Type: value.Spec(value.KindMessage)}
	p2 := &Parameter{Name: "id", Type: value.Spec(value.KindString)}

	r.AddArgument(p1)
	r.AddArgument(p2)

	args := r.Arguments()
	require.Len(t, args, 2)
	assert.Same(t, p1, args[0])
	assert.Same(t, p2, args[1])
}

func TestResource_NamedWorkerLookupNeverReturnsDefault(t *testing.T) {
	r := NewResource()
	named := NewWorker("side")
	r.AddWorker(named)

	assert.Same(t, named, r.Worker("side"))
	assert.Nil(t, r.Worker("missing"))

	// The default worker has the empty name; looking it up by that name
	// must not expose it.
	assert.Nil(t, r.Worker(""))

	require.Len(t, r.Workers(), 1)
	assert.NotContains(t, r.Workers(), r.DefaultWorker())
}

func TestResource_ExecuteDelegatesToDefaultWorker(t *testing.T) {
	r := NewResource()

	// First statement produces a value the second consumes.
	r.AddStatement(stmt(func(ctx context.Context, inv *invocation.Context) error {
		inv.SetValue("produced", value.IntVal(41))
		return nil
	}))
	var consumed int64
	r.AddStatement(stmt(func(ctx context.Context, inv *invocation.Context) error {
		v, _ := inv.Value("produced")
		n, err := v.(value.Value).AsInt()
		if err != nil {
			return err
		}
		consumed = n + 1
		return nil
	}))

	cb := &countingCallback{}
	done := r.Execute(context.Background(), newInv(), cb)

	assert.True(t, done)
	assert.Equal(t, int32(1), cb.calls.Load())
	assert.NoError(t, cb.err)
	assert.Equal(t, int64(42), consumed)
	assert.Equal(t, Completed, r.DefaultWorker().State())
}

package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/value"
)

func TestNew_CoreModulesValidateCleanly(t *testing.T) {
	var out bytes.Buffer
	cfg, err := NewConfig(Config{LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)

	a := New(&out, cfg)
	require.NotNil(t, a.Registry())
	require.NotNil(t, a.Logger())

	// The compiled-in set must expose the array natives.
	d, ok := a.Registry().Lookup("arrays", "copyOf")
	require.True(t, ok)
	assert.True(t, d.Public)
}

type badModule struct{}

func (badModule) Register(r *native.Registry) {
	// Public function with no manifest backing it.
	r.Register(&native.Descriptor{
		Namespace: "bad",
		Name:      "orphan",
		Returns:   []value.TypeSpec{value.Spec(value.KindInt)},
		Public:    true,
	}, func(ctx context.Context, call *native.Call) ([]value.Value, error) {
		return []value.Value{value.IntVal(0)}, nil
	})
}

func TestNew_PanicsOnManifestDivergence(t *testing.T) {
	var out bytes.Buffer
	cfg, err := NewConfig(Config{LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)

	assert.Panics(t, func() {
		New(&out, cfg, badModule{})
	})
}

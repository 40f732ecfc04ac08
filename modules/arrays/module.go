// Package arrays provides the array natives of the runtime.
package arrays

import (
	"context"
	_ "embed"

	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/value"
)

//go:embed module.hcl
var manifest []byte

// Module implements the native.Module interface for this package.
type Module struct{}

// copyOf is the host implementation of arrays:copyOf(array(message)).
// The destination is a fresh array; mutating either side afterward never
// affects the other.
func copyOf(ctx context.Context, call *native.Call) ([]value.Value, error) {
	src, err := call.Arg(0).AsArray()
	if err != nil {
		return nil, err
	}
	dst, err := value.CopyOf(src, value.KindMessage)
	if err != nil {
		return nil, err
	}
	return []value.Value{value.ArrayVal(dst)}, nil
}

// length is the host implementation of arrays:length(array(any)).
func length(ctx context.Context, call *native.Call) ([]value.Value, error) {
	arr, err := call.Arg(0).AsArray()
	if err != nil {
		return nil, err
	}
	return []value.Value{value.IntVal(int64(arr.Size()))}, nil
}

// Register registers the handlers and the manifest with the registry.
func (m *Module) Register(r *native.Registry) {
	r.Register(&native.Descriptor{
		Namespace: "arrays",
		Name:      "copyOf",
		Args:      []value.TypeSpec{value.ArraySpec(value.KindMessage)},
		Returns:   []value.TypeSpec{value.ArraySpec(value.KindMessage)},
		Public:    true,
	}, copyOf)

	r.Register(&native.Descriptor{
		Namespace: "arrays",
		Name:      "length",
		Args:      []value.TypeSpec{value.ArraySpec(value.KindAny)},
		Returns:   []value.TypeSpec{value.Spec(value.KindInt)},
		Public:    true,
	}, length)

	r.RegisterManifest("arrays.hcl", manifest)
}

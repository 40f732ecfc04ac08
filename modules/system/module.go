// Package system provides basic host-side utility natives.
package system

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/value"
)

//go:embed module.hcl
var manifest []byte

// Module implements the native.Module interface for this package.
type Module struct{}

// println is the host implementation of system:println(string).
func println(ctx context.Context, call *native.Call) ([]value.Value, error) {
	s, err := call.Arg(0).AsString()
	if err != nil {
		return nil, err
	}
	fmt.Println(s)
	return nil, nil
}

// epochTime is the host implementation of system:epochTime() -> int.
func epochTime(ctx context.Context, call *native.Call) ([]value.Value, error) {
	return []value.Value{value.IntVal(time.Now().Unix())}, nil
}

// Register registers the handlers and the manifest with the registry.
func (m *Module) Register(r *native.Registry) {
	r.Register(&native.Descriptor{
		Namespace: "system",
		Name:      "println",
		Args:      []value.TypeSpec{value.Spec(value.KindString)},
		Public:    true,
	}, println)

	r.Register(&native.Descriptor{
		Namespace: "system",
		Name:      "epochTime",
		Returns:   []value.TypeSpec{value.Spec(value.KindInt)},
		Public:    true,
	}, epochTime)

	r.RegisterManifest("system.hcl", manifest)
}

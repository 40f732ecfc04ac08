package native

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface native function packages implement to be wired
// into a registry.
type Module interface {
	Register(r *Registry)
}

type registered struct {
	desc *Descriptor
	fn   Func
}

// Registry maps (namespace, name) pairs to host implementations and holds
// the module manifests for startup validation. Registration happens during
// process start, strictly before the first dispatch; from then on the
// registry is read-only, so lookups take no lock.
type Registry struct {
	funcs     map[string]*registered
	manifests map[string][]byte
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs:     make(map[string]*registered),
		manifests: make(map[string][]byte),
	}
}

// Register binds a descriptor to its host implementation. Registering the
// same qualified name twice is a programming error and panics.
func (r *Registry) Register(desc *Descriptor, fn Func) {
	qn := desc.QualifiedName()
	if _, exists := r.funcs[qn]; exists {
		panic(fmt.Sprintf("native function '%s' already registered", qn))
	}
	if fn == nil {
		panic(fmt.Sprintf("native function '%s' registered without implementation", qn))
	}
	slog.Debug("Registering native function.", "function", qn)
	r.funcs[qn] = &registered{desc: desc, fn: fn}
}

// RegisterManifest stores a module's HCL manifest source for validation.
// Duplicate manifest names panic, matching Register.
func (r *Registry) RegisterManifest(name string, src []byte) {
	if _, exists := r.manifests[name]; exists {
		panic(fmt.Sprintf("manifest '%s' already registered", name))
	}
	slog.Debug("Registering native manifest.", "manifest", name)
	r.manifests[name] = src
}

// Lookup returns the descriptor registered under namespace:name.
func (r *Registry) Lookup(namespace, name string) (*Descriptor, bool) {
	reg, ok := r.funcs[namespace+":"+name]
	if !ok {
		return nil, false
	}
	return reg.desc, true
}

// Descriptors returns all registered descriptors sorted by qualified name.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.funcs))
	for _, reg := range r.funcs {
		out = append(out, reg.desc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName() < out[j].QualifiedName()
	})
	return out
}

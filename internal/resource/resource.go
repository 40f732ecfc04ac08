package resource

import (
	"context"

	"github.com/vk/relaycore/internal/invocation"
)

// Resource is a protocol-agnostic request handler: annotations, declared
// parameters, the implicit default worker, and zero or more named workers
// for explicit concurrency. The default worker is created at construction,
// is never nil, and is never exposed through the named worker list.
type Resource struct {
	annotations   map[string]*Annotation
	arguments     []*Parameter
	workers       []*Worker
	defaultWorker *Worker
}

// NewResource creates a resource with a fresh default worker.
func NewResource() *Resource {
	return &Resource{
		annotations:   make(map[string]*Annotation),
		defaultWorker: NewWorker(""),
	}
}

// DefaultWorker returns the implicit execution unit backing the resource's
// top-level scope.
func (r *Resource) DefaultWorker() *Worker { return r.defaultWorker }

// AddAnnotation attaches an annotation; adding one with an existing name
// overwrites it.
func (r *Resource) AddAnnotation(a *Annotation) {
	r.annotations[a.Name] = a
}

// Annotation returns the annotation registered under name, or nil.
func (r *Resource) Annotation(name string) *Annotation {
	return r.annotations[name]
}

// Annotations returns all annotations keyed by name.
func (r *Resource) Annotations() map[string]*Annotation {
	return r.annotations
}

// AddArgument appends a formal parameter; order defines positional binding
// at invocation time.
func (r *Resource) AddArgument(p *Parameter) {
	r.arguments = append(r.arguments, p)
}

// SetArguments replaces the parameter list.
func (r *Resource) SetArguments(ps []*Parameter) { r.arguments = ps }

// Arguments returns the declared parameters in binding order.
func (r *Resource) Arguments() []*Parameter { return r.arguments }

// AddWorker appends a named worker. The default worker never appears in
// this list.
func (r *Resource) AddWorker(w *Worker) {
	r.workers = append(r.workers, w)
}

// SetWorkers replaces the named worker list.
func (r *Resource) SetWorkers(ws []*Worker) { r.workers = ws }

// Workers returns the named workers in declared order.
func (r *Resource) Workers() []*Worker { return r.workers }

// Worker returns the named worker, or nil. Lookups never return the
// default worker, whatever its name.
func (r *Resource) Worker(name string) *Worker {
	for _, w := range r.workers {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// AddConnection adds a connection to the default worker's scope.
func (r *Resource) AddConnection(c *Connection) { r.defaultWorker.AddConnection(c) }

// SetConnections replaces the default worker's connection scope.
func (r *Resource) SetConnections(cs []*Connection) { r.defaultWorker.SetConnections(cs) }

// Connections returns the default worker's connections.
func (r *Resource) Connections() []*Connection { return r.defaultWorker.Connections() }

// AddVariable adds a variable to the default worker's scope.
func (r *Resource) AddVariable(v *VariableDecl) { r.defaultWorker.AddVariable(v) }

// SetVariables replaces the default worker's variable scope.
func (r *Resource) SetVariables(vs []*VariableDecl) { r.defaultWorker.SetVariables(vs) }

// Variables returns the default worker's variable declarations.
func (r *Resource) Variables() []*VariableDecl { return r.defaultWorker.Variables() }

// AddStatement appends a statement to the default worker's sequence.
func (r *Resource) AddStatement(s Statement) { r.defaultWorker.AddStatement(s) }

// SetStatements replaces the default worker's statement sequence.
func (r *Resource) SetStatements(ss []Statement) { r.defaultWorker.SetStatements(ss) }

// Statements returns the default worker's statement sequence.
func (r *Resource) Statements() []Statement { return r.defaultWorker.Statements() }

// Execute delegates to the default worker: the resource is done exactly
// when its default worker is done. Named workers are driven by whoever
// spawns them, not by the resource.
func (r *Resource) Execute(ctx context.Context, inv *invocation.Context, cb invocation.Callback) bool {
	return r.defaultWorker.Execute(ctx, inv, cb)
}

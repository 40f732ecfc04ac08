package resource

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/vk/relaycore/internal/condition"
	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/metrics"
)

// State is a worker's position in its lifecycle, managed atomically.
type State int32

const (
	// Created is the state at construction, before the first Execute.
	Created State = iota
	// Running means Execute has been invoked and statements are in flight.
	Running
	// Completed means all statements finished and the callback fired with
	// a success outcome.
	Completed
	// Failed means a statement raised an unrecovered error and the
	// callback fired with a failure outcome.
	Failed
)

// String returns the state's name for logs.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Worker is a single execution unit: an ordered statement list run against
// a private scope of variables and connections. The scope lists grow only
// during structural assembly, before the first Execute; no two workers
// share a variable or connection instance.
type Worker struct {
	name        string
	variables   []*VariableDecl
	connections []*Connection
	statements  []Statement

	state atomic.Int32
}

// NewWorker creates a worker in the Created state.
func NewWorker(name string) *Worker {
	return &Worker{name: name}
}

// Name returns the worker's declared name; the default worker of a
// resource has an empty name.
func (w *Worker) Name() string { return w.name }

// State returns the worker's current lifecycle state.
func (w *Worker) State() State { return State(w.state.Load()) }

// AddVariable appends a declaration to the worker's private scope.
func (w *Worker) AddVariable(v *VariableDecl) { w.variables = append(w.variables, v) }

// SetVariables replaces the worker's variable scope.
func (w *Worker) SetVariables(vs []*VariableDecl) { w.variables = vs }

// Variables returns the worker's variable declarations in declared order.
func (w *Worker) Variables() []*VariableDecl { return w.variables }

// AddConnection appends a connection reference to the worker's scope.
func (w *Worker) AddConnection(c *Connection) { w.connections = append(w.connections, c) }

// SetConnections replaces the worker's connection scope.
func (w *Worker) SetConnections(cs []*Connection) { w.connections = cs }

// Connections returns the worker's connections in declared order.
func (w *Worker) Connections() []*Connection { return w.connections }

// AddStatement appends a statement to the execution sequence.
func (w *Worker) AddStatement(s Statement) { w.statements = append(w.statements, s) }

// SetStatements replaces the execution sequence.
func (w *Worker) SetStatements(ss []Statement) { w.statements = ss }

// Statements returns the execution sequence in declared order.
func (w *Worker) Statements() []Statement { return w.statements }

// Execute runs the worker's statements strictly in declared order against
// the invocation context and reports the outcome through cb exactly once.
// The returned boolean tells the caller whether the unit's work was fully
// complete at return; the callback remains the authoritative completion
// signal either way.
//
// A worker never re-executes: calling Execute on a unit that already left
// the Created state is a structural violation and panics.
func (w *Worker) Execute(ctx context.Context, inv *invocation.Context, cb invocation.Callback) bool {
	if !w.state.CompareAndSwap(int32(Created), int32(Running)) {
		panic(condition.New(condition.StructuralViolation,
			"worker '%s' re-executed in state %s", w.name, w.State()))
	}

	logger := ctxlog.FromContext(ctx).With("worker", w.name, "invocation", inv.ID())
	logger.Debug("Worker started.", "statements", len(w.statements))

	for i, stmt := range w.statements {
		if err := ctx.Err(); err != nil {
			w.fail(logger, inv, cb, condition.Wrap(condition.ExecutionFailure, err,
				"worker '%s' cancelled before statement %d", w.name, i))
			return true
		}
		if err := stmt.Execute(ctx, inv); err != nil {
			w.fail(logger, inv, cb, condition.Wrap(condition.ExecutionFailure, err,
				"worker '%s' statement %d failed", w.name, i))
			return true
		}
	}

	w.state.Store(int32(Completed))
	metrics.WorkerExecutions.WithLabelValues("completed").Inc()
	logger.Debug("Worker completed.")
	cb.Done(inv, nil)
	return true
}

func (w *Worker) fail(logger *slog.Logger, inv *invocation.Context, cb invocation.Callback, err error) {
	w.state.Store(int32(Failed))
	metrics.WorkerExecutions.WithLabelValues("failed").Inc()
	logger.Error("Worker failed.", "error", err)
	cb.Done(inv, err)
}

// Spawn runs Execute on its own goroutine and returns the unit's one-shot
// completion. The spawned unit interleaves freely with its siblings; only
// the returned completion orders anything across units. A failing sibling
// is not cancelled by anyone else's failure, only by ctx.
func (w *Worker) Spawn(ctx context.Context, inv *invocation.Context) *invocation.Completion {
	comp := invocation.NewCompletion()
	go w.Execute(ctx, inv, comp)
	return comp
}

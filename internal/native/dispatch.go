package native

import (
	"context"
	"time"

	"github.com/vk/relaycore/internal/condition"
	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/invocation"
	"github.com/vk/relaycore/internal/metrics"
	"github.com/vk/relaycore/internal/value"
)

// Invoke dispatches one native call: descriptor lookup, arity check,
// positional argument validation, host invocation, and return validation,
// in that order. Validation failures are reported before the host
// implementation runs, so a rejected call has no observable side effect.
// Dispatch is synchronous: the calling statement resumes only when the
// host implementation has returned or failed.
func (r *Registry) Invoke(ctx context.Context, inv *invocation.Context, namespace, name string, args []value.Value) ([]value.Value, error) {
	qn := namespace + ":" + name
	logger := ctxlog.FromContext(ctx).With("function", qn)

	reg, ok := r.funcs[qn]
	if !ok {
		metrics.NativeDispatches.WithLabelValues(qn, "rejected").Inc()
		return nil, condition.New(condition.StructuralViolation, "unknown native function '%s'", qn)
	}
	desc := reg.desc

	if len(args) != len(desc.Args) {
		metrics.NativeDispatches.WithLabelValues(qn, "rejected").Inc()
		return nil, condition.New(condition.ArityMismatch,
			"'%s' declares %d argument(s), got %d", qn, len(desc.Args), len(args))
	}
	for i, spec := range desc.Args {
		if !spec.Accepts(args[i]) {
			metrics.NativeDispatches.WithLabelValues(qn, "rejected").Inc()
			return nil, condition.New(condition.TypeMismatch,
				"'%s' argument %d: declared %s, got %s", qn, i, spec, describe(args[i]))
		}
	}

	logger.Debug("Dispatching native function.", "args", len(args))
	start := time.Now()
	results, err := reg.fn(ctx, &Call{inv: inv, args: args})
	if err != nil {
		metrics.NativeDispatches.WithLabelValues(qn, "failed").Inc()
		return nil, condition.Wrap(condition.ExecutionFailure, err, "'%s' failed", qn)
	}
	metrics.NativeDispatchDuration.WithLabelValues(qn).Observe(time.Since(start).Seconds())

	if len(results) != len(desc.Returns) {
		metrics.NativeDispatches.WithLabelValues(qn, "failed").Inc()
		return nil, condition.New(condition.ArityMismatch,
			"'%s' declares %d return value(s), produced %d", qn, len(desc.Returns), len(results))
	}
	for i, spec := range desc.Returns {
		if !spec.Accepts(results[i]) {
			metrics.NativeDispatches.WithLabelValues(qn, "failed").Inc()
			return nil, condition.New(condition.TypeMismatch,
				"'%s' return %d: declared %s, produced %s", qn, i, spec, describe(results[i]))
		}
	}

	metrics.NativeDispatches.WithLabelValues(qn, "ok").Inc()
	return results, nil
}

// describe renders a value's runtime type for error messages, including
// the element kind of arrays.
func describe(v value.Value) string {
	if arr, err := v.AsArray(); err == nil {
		return value.ArraySpec(arr.ElemKind()).String()
	}
	return v.Kind().String()
}

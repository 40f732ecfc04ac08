// Package resource implements the execution model of a request handler: a
// Resource aggregating one implicit default Worker plus zero or more named
// Workers, each owning a private scope of variables, connections, and an
// ordered statement list.
//
// A Resource has no scope of its own: every variable, connection, and
// statement operation forwards to the default worker, which keeps the "a
// Resource is sugar over its default unit" invariant enforceable by
// construction. Workers are independently schedulable; completion of each
// unit is reported exactly once through its callback.
package resource

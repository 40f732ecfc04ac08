// Package app wires the execution core into a runnable unit: it builds the
// logger, assembles and validates the native function registry from the
// compiled-in modules, and serves the observability endpoints. The routing
// layer that selects resources and owns invocation contexts sits above
// this package.
package app

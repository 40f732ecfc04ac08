// Package native provides the typed bridge between interpreted statements
// and host-implemented operations.
//
// Each native capability is registered once under a (namespace, name) pair
// together with an immutable Descriptor declaring its argument and return
// signatures. The dispatcher validates actual values against the
// declaration before the host implementation runs and validates produced
// results before they reach the caller, so a host function never observes
// a call that does not match its contract.
//
// Modules additionally register an HCL manifest — the public declaration
// of their functions. During startup the registry performs a strict parity
// check between manifests and Go-registered descriptors, preventing the
// two from drifting apart.
package native

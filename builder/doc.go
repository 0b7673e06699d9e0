// SPDX-License-Identifier: MIT
// Package builder provides deterministic, ready-validated conlog puzzle
// graphs: the small gadget corpus used by tests, examples, and
// benchmarks throughout the module.
//
// Every factory builds the same graph on every call (same node ids,
// same adjacency order), so search results over them are reproducible.
// Factories validate before returning; a construction error is a bug in
// this package, not in the caller.
package builder

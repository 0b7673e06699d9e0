// Package eval is the forward interpreter of conlog walks and the source
// of truth for solver correctness.
//
// What
//
//   - Evaluate runs a walk from an initial assignment, applying each
//     node's forward semantics in order, and accepts only walks that
//     satisfy the boundary condition (fixed variables hold their
//     prescribed values) and the zero-sum condition (all variables zero
//     at the terminal).
//   - Partial performs the same sweep over an abstract arithmetic
//     domain, stopping at the terminal without the zero check, to
//     reason about walks without concrete values (monotone.Bound is one
//     such domain). The solver does not call it: its pruning uses the
//     intervals from monotone.Analyze.
//
// Arithmetic
//
//	All arithmetic is signed 64-bit with two's-complement wraparound;
//	overflow is defined behavior and never reported.
//
// Errors
//
//	Programmer errors (a malformed walk, a reference to an undeclared
//	variable) surface as sentinel errors. A walk that merely fails the
//	boundary or zero-sum condition is not an error: Evaluate reports it
//	as an ordinary "no solution" result.
package eval

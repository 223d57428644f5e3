// Package transform reduces the concrete syntax tree produced by the grammar
// engine into model.Module values.
//
// The tree is reduced bottom-up. Every production has one reducer, registered
// by production name, which receives the already reduced values of the node's
// children and returns a single value of a closed set of variants. Higher
// reducers switch on those variants rather than on counts or positions. A tree
// that parses but cannot be assembled, which in practice means a hand-built
// tree or a grammar change not matched here, fails with a *StructuralError.
package transform

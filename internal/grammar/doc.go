// Package grammar is the grammar engine of the Cogent language. It tokenizes
// source text and parses it into the concrete syntax tree defined by the cst
// package, tagging every node with the production that produced it.
//
// The engine knows nothing about the semantic model. Its only contract is the
// production vocabulary in cst and the shape of each production's children;
// turning the tree into modules is the transform package's job. Syntax
// problems are reported as hcl.Diagnostics pointing at the offending source
// range.
package grammar

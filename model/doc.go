// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a Cogent task module. It is
// the output of the tree transformer: a strongly-typed, structurally validated
// snapshot of everything a module declares.
//
// # Core Concepts
//
//   - Module: a named unit with a mandatory goal, typed inputs, optional context
//     and feedback text, a process, imports and named type declarations.
//
//   - InputDecl: a named, typed input. The type reference is a TypeExpr; a bare
//     identifier is simply a TypeExpr without a parameter.
//
//   - TypeDecl: either a TypeExpr (an alias) or an EnumType (an enumeration),
//     stored under its declared name in Module.Types.
//
//   - Step: one process instruction. Plain steps are opaque text; For, While and
//     Try steps own nested step sequences, so the process is a tree.
//
//   - Annotations: name/argument markers attached to modules, inputs and steps.
//     They are carried through untouched; nothing in this package interprets
//     them.
//
// Why a separate model package?
//
// The transformer, the loader and any downstream tooling all speak in terms of
// these types. Keeping them free of grammar and tree concerns means a caller
// can consume a Module without importing anything that knows how it was parsed.
// Values are built once per transform call and are not modified afterwards;
// callers that need to change a module should copy it first.
package model

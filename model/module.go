// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Module structure, the root of the semantic model.
//
// Why are Context and Feedback pointers?
//
// Both clauses are optional and an empty string is a legitimate value for
// either of them. A nil pointer is the only unambiguous way to say "the clause
// was not written", which is what consumers need to know.
package model

import (
	"github.com/hashicorp/hcl/v2"
)

// Module is a fully assembled task module.
type Module struct {
	Name        string
	Goal        string
	Inputs      []InputDecl
	Context     *string
	Process     []Step
	Feedback    *string
	Imports     []string
	Types       map[string]TypeDecl
	Annotations Annotations

	// Range is the source span of the module declaration. It is the zero
	// range for modules built from trees that carry no positions.
	Range hcl.Range
}

// Input returns the input declared with the given name.
func (m *Module) Input(name string) (InputDecl, bool) {
	for _, in := range m.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputDecl{}, false
}

// InputDecl is a single declared module input.
type InputDecl struct {
	Name        string
	Type        *TypeExpr
	Annotations Annotations
}

// StringPtr returns a pointer to s. It exists for building optional fields.
func StringPtr(s string) *string {
	return &s
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the type vocabulary of a module: type expressions, enums,
// and the TypeDecl union that binds a name to either of them.
//
// Why a closed interface for TypeDecl?
//
// A declaration is an alias or an enum and nothing else. Modelling it as an
// interface with an unexported marker method lets a type switch be exhaustive
// in practice, and keeps callers from smuggling arbitrary values into
// Module.Types.
package model

import (
	"slices"
	"strings"
)

// DeclKind identifies the variant of a TypeDecl.
type DeclKind int

const (
	DeclAlias DeclKind = iota
	DeclEnum
)

func (k DeclKind) String() string {
	if k == DeclEnum {
		return "enum"
	}
	return "alias"
}

// TypeDecl is a named type declaration: *TypeExpr for aliases, *EnumType for
// enumerations.
type TypeDecl interface {
	DeclKind() DeclKind
	isTypeDecl()
}

// TypeExpr is a type reference with an optional single generic parameter,
// e.g. `Int`, `List<Int>` or `List<List<Int>>`.
type TypeExpr struct {
	Name  string
	Param *TypeExpr
}

// NewTypeExpr builds a type expression; params nest left to right, so
// NewTypeExpr("List", "List", "Int") is List<List<Int>>.
func NewTypeExpr(name string, params ...string) *TypeExpr {
	te := &TypeExpr{Name: name}
	cur := te
	for _, p := range params {
		cur.Param = &TypeExpr{Name: p}
		cur = cur.Param
	}
	return te
}

func (*TypeExpr) DeclKind() DeclKind { return DeclAlias }
func (*TypeExpr) isTypeDecl()        {}

// String renders the expression in source syntax.
func (t *TypeExpr) String() string {
	if t == nil {
		return ""
	}
	if t.Param == nil {
		return t.Name
	}
	return t.Name + "<" + t.Param.String() + ">"
}

// Equal reports whether two type expressions are structurally identical.
func (t *TypeExpr) Equal(o *TypeExpr) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Name == o.Name && t.Param.Equal(o.Param)
}

// EnumType is an enumeration. Members keep their first declaration order;
// duplicates are collapsed.
type EnumType struct {
	Name    string
	Members []string
}

// NewEnumType builds an enum, dropping repeated members.
func NewEnumType(name string, members ...string) *EnumType {
	e := &EnumType{Name: name, Members: make([]string, 0, len(members))}
	for _, m := range members {
		if !e.Has(m) {
			e.Members = append(e.Members, m)
		}
	}
	return e
}

func (*EnumType) DeclKind() DeclKind { return DeclEnum }
func (*EnumType) isTypeDecl()        {}

// Has reports whether member is part of the enum.
func (e *EnumType) Has(member string) bool {
	return slices.Contains(e.Members, member)
}

func (e *EnumType) String() string {
	return "enum " + e.Name + " { " + strings.Join(e.Members, ", ") + " }"
}

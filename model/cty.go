package model

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ToCtyValue converts a module into a cty object. The result is a detached,
// read-only snapshot suitable for evaluation contexts and serialisation.
// Source ranges are not part of the snapshot.
func ToCtyValue(m *Module) cty.Value {
	if m == nil {
		return cty.NilVal
	}
	inputs := make([]cty.Value, 0, len(m.Inputs))
	for _, in := range m.Inputs {
		inputs = append(inputs, cty.ObjectVal(map[string]cty.Value{
			"name":        cty.StringVal(in.Name),
			"type":        cty.StringVal(in.Type.String()),
			"annotations": annotationsVal(in.Annotations),
		}))
	}
	return cty.ObjectVal(map[string]cty.Value{
		"name":        cty.StringVal(m.Name),
		"goal":        cty.StringVal(m.Goal),
		"inputs":      tupleVal(inputs),
		"context":     optionalString(m.Context),
		"process":     stepsVal(m.Process),
		"feedback":    optionalString(m.Feedback),
		"imports":     stringList(m.Imports),
		"types":       typesVal(m.Types),
		"annotations": annotationsVal(m.Annotations),
	})
}

// MarshalJSON encodes the module snapshot as JSON.
func (m *Module) MarshalJSON() ([]byte, error) {
	v := ToCtyValue(m)
	return ctyjson.Marshal(v, v.Type())
}

// Equal reports whether two modules are structurally identical, ignoring
// source ranges.
func Equal(a, b *Module) bool {
	if a == nil || b == nil {
		return a == b
	}
	return ToCtyValue(a).RawEquals(ToCtyValue(b))
}

func stepsVal(steps []Step) cty.Value {
	vals := make([]cty.Value, 0, len(steps))
	for _, s := range steps {
		vals = append(vals, stepVal(s))
	}
	return tupleVal(vals)
}

func stepVal(s Step) cty.Value {
	attrs := map[string]cty.Value{
		"kind":        cty.StringVal(s.Kind().String()),
		"annotations": annotationsVal(s.StepAnnotations()),
	}
	switch v := s.(type) {
	case *PlainStep:
		attrs["text"] = cty.StringVal(v.Text)
	case *ForStep:
		attrs["var"] = cty.StringVal(v.Var)
		attrs["iterable"] = cty.StringVal(v.Iterable)
		attrs["body"] = stepsVal(v.Body)
	case *WhileStep:
		attrs["condition"] = cty.StringVal(v.Condition)
		attrs["body"] = stepsVal(v.Body)
	case *TryStep:
		attrs["body"] = stepsVal(v.Body)
		if v.Catch != nil {
			attrs["catch_var"] = cty.StringVal(v.Catch.Var)
			attrs["catch_body"] = stepsVal(v.Catch.Body)
		} else {
			attrs["catch_var"] = cty.NullVal(cty.String)
			attrs["catch_body"] = cty.NullVal(cty.EmptyTuple)
		}
	}
	return cty.ObjectVal(attrs)
}

func typesVal(types map[string]TypeDecl) cty.Value {
	attrs := make(map[string]cty.Value, len(types))
	for name, decl := range types {
		switch d := decl.(type) {
		case *TypeExpr:
			attrs[name] = cty.ObjectVal(map[string]cty.Value{
				"kind":    cty.StringVal(DeclAlias.String()),
				"type":    cty.StringVal(d.String()),
				"members": cty.ListValEmpty(cty.String),
			})
		case *EnumType:
			attrs[name] = cty.ObjectVal(map[string]cty.Value{
				"kind":    cty.StringVal(DeclEnum.String()),
				"type":    cty.NullVal(cty.String),
				"members": stringList(d.Members),
			})
		}
	}
	return cty.ObjectVal(attrs)
}

func annotationsVal(anns Annotations) cty.Value {
	attrs := make(map[string]cty.Value, len(anns))
	for name, a := range anns {
		attrs[name] = stringList(a.Args)
	}
	return cty.ObjectVal(attrs)
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

func tupleVal(vals []cty.Value) cty.Value {
	if len(vals) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(vals)
}

func optionalString(s *string) cty.Value {
	if s == nil {
		return cty.NullVal(cty.String)
	}
	return cty.StringVal(*s)
}

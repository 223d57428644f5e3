package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func sampleModule() *Module {
	return &Module{
		Name: "Sample",
		Goal: "Exercise the model",
		Inputs: []InputDecl{
			{Name: "items", Type: NewTypeExpr("List", "Int"), Annotations: Annotations{"required": {Name: "required"}}},
		},
		Context: StringPtr("ctx"),
		Process: []Step{
			Plain("start"),
			&ForStep{Var: "i", Iterable: "items", Body: []Step{
				&WhileStep{Condition: "busy", Body: []Step{Plain("wait")}},
			}},
			&TryStep{
				Body:  []Step{Plain("risky")},
				Catch: &CatchClause{Var: "err", Body: []Step{Plain("recover")}},
			},
		},
		Imports: []string{"Utils"},
		Types: map[string]TypeDecl{
			"Ints":  NewTypeExpr("List", "Int"),
			"Color": NewEnumType("Color", "Red", "Green"),
		},
		Annotations: Annotations{"owner": {Name: "owner", Args: []string{"ops"}}},
	}
}

func TestTypeExpr(t *testing.T) {
	nested := NewTypeExpr("List", "List", "Int")

	assert.Equal(t, "List<List<Int>>", nested.String())
	assert.Equal(t, DeclAlias, nested.DeclKind())
	assert.True(t, nested.Equal(NewTypeExpr("List", "List", "Int")))
	assert.False(t, nested.Equal(NewTypeExpr("List", "Int")))
	assert.True(t, (*TypeExpr)(nil).Equal(nil))
}

func TestEnumTypeCollapsesDuplicates(t *testing.T) {
	e := NewEnumType("Color", "Red", "Green", "Red", "Blue")

	assert.Equal(t, []string{"Red", "Green", "Blue"}, e.Members)
	assert.True(t, e.Has("Blue"))
	assert.False(t, e.Has("Purple"))
	assert.Equal(t, DeclEnum, e.DeclKind())
	assert.Equal(t, "enum Color { Red, Green, Blue }", e.String())
}

func TestAnnotations(t *testing.T) {
	anns := Annotations{
		"retry": {Name: "retry", Args: []string{"3"}},
		"draft": {Name: "draft"},
	}

	args, ok := anns.Args("retry")
	require.True(t, ok)
	assert.Equal(t, []string{"3"}, args)
	assert.True(t, anns["draft"].IsFlag())
	assert.False(t, anns.Has("missing"))
	_, ok = anns.Args("missing")
	assert.False(t, ok)
}

func TestWalkStepsVisitsParentsFirst(t *testing.T) {
	m := sampleModule()

	var kinds []string
	WalkSteps(m.Process, func(s Step) bool {
		kinds = append(kinds, s.Kind().String())
		return true
	})

	assert.Equal(t, []string{"plain", "for", "while", "plain", "try", "plain", "plain"}, kinds)
}

func TestWalkStepsCanSkipBodies(t *testing.T) {
	m := sampleModule()

	count := 0
	WalkSteps(m.Process, func(s Step) bool {
		count++
		return s.Kind() != StepFor
	})

	assert.Equal(t, 5, count)
}

func TestModuleInputLookup(t *testing.T) {
	m := sampleModule()

	in, ok := m.Input("items")
	require.True(t, ok)
	assert.Equal(t, "List<Int>", in.Type.String())

	_, ok = m.Input("nope")
	assert.False(t, ok)
}

func TestToCtyValue(t *testing.T) {
	v := ToCtyValue(sampleModule())

	require.True(t, v.Type().IsObjectType())
	assert.Equal(t, cty.StringVal("Sample"), v.GetAttr("name"))
	assert.True(t, v.GetAttr("feedback").IsNull())
	assert.Equal(t, 3, v.GetAttr("process").LengthInt())
	assert.Equal(t, cty.StringVal("enum"), v.GetAttr("types").GetAttr("Color").GetAttr("kind"))
}

func TestMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(sampleModule())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Sample", decoded["name"])
	assert.Equal(t, "ctx", decoded["context"])
	assert.Nil(t, decoded["feedback"])
	assert.Equal(t, []any{"Utils"}, decoded["imports"])

	process := decoded["process"].([]any)
	require.Len(t, process, 3)
	try := process[2].(map[string]any)
	assert.Equal(t, "try", try["kind"])
	assert.Equal(t, "err", try["catch_var"])
}

func TestEqual(t *testing.T) {
	a, b := sampleModule(), sampleModule()
	assert.True(t, Equal(a, b))

	b.Process = append(b.Process, Plain("extra"))
	assert.False(t, Equal(a, b))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

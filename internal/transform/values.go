package transform

import (
	"fmt"

	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/model"
)

// value is the result of reducing one child. Every reducer returns exactly
// one of the concrete types below, so consumers switch on the type instead of
// guessing a role from the value's shape.
type value interface {
	isValue()
}

// tokenValue wraps a raw token that reached a reducer unchanged.
type tokenValue struct{ tok cst.Token }

// nameValue is a bare identifier produced by type_name and enum_item.
type nameValue struct{ name string }

type annotationValue struct{ ann model.Annotation }

type argValue struct{ arg string }

type argsValue struct{ args []string }

type typeExprValue struct{ expr *model.TypeExpr }

// declValue is a named alias or enum declaration.
type declValue struct {
	name string
	decl model.TypeDecl
}

type importValue struct{ name string }

type inputValue struct{ input model.InputDecl }

type inputsValue struct{ inputs []model.InputDecl }

type stepValue struct{ step model.Step }

type stepsValue struct{ steps []model.Step }

type fieldKind int

const (
	fieldGoal fieldKind = iota
	fieldInputs
	fieldContext
	fieldProcess
	fieldFeedback
)

func (k fieldKind) String() string {
	switch k {
	case fieldGoal:
		return "goal"
	case fieldInputs:
		return "inputs"
	case fieldContext:
		return "context"
	case fieldProcess:
		return "process"
	default:
		return "feedback"
	}
}

// fieldValue is one module body clause. Only the member matching kind is set.
type fieldValue struct {
	kind   fieldKind
	text   string
	inputs []model.InputDecl
	steps  []model.Step
}

// bodyValue collects the module body clauses. Absent clauses stay nil.
type bodyValue struct {
	goal     *string
	inputs   []model.InputDecl
	context  *string
	process  []model.Step
	feedback *string
}

type moduleValue struct{ module *model.Module }

type documentValue struct{ modules []*model.Module }

func (tokenValue) isValue()      {}
func (nameValue) isValue()       {}
func (annotationValue) isValue() {}
func (argValue) isValue()        {}
func (argsValue) isValue()       {}
func (typeExprValue) isValue()   {}
func (declValue) isValue()       {}
func (importValue) isValue()     {}
func (inputValue) isValue()      {}
func (inputsValue) isValue()     {}
func (stepValue) isValue()       {}
func (stepsValue) isValue()      {}
func (fieldValue) isValue()      {}
func (bodyValue) isValue()       {}
func (moduleValue) isValue()     {}
func (documentValue) isValue()   {}

// describe names a value for error messages.
func describe(v value) string {
	switch v := v.(type) {
	case nil:
		return "end of children"
	case tokenValue:
		return fmt.Sprintf("%s token %s", v.tok.Kind, v.tok.Text)
	case nameValue:
		return fmt.Sprintf("name %q", v.name)
	case annotationValue:
		return "annotation @" + v.ann.Name
	case argValue:
		return "annotation argument"
	case argsValue:
		return "annotation arguments"
	case typeExprValue:
		return "type expression " + v.expr.String()
	case declValue:
		return fmt.Sprintf("%s declaration %q", v.decl.DeclKind(), v.name)
	case importValue:
		return fmt.Sprintf("import %q", v.name)
	case inputValue:
		return fmt.Sprintf("input %q", v.input.Name)
	case inputsValue:
		return "input list"
	case stepValue:
		return v.step.Kind().String() + " step"
	case stepsValue:
		return "step list"
	case fieldValue:
		return v.kind.String() + " clause"
	case bodyValue:
		return "module body"
	case moduleValue:
		return fmt.Sprintf("module %q", v.module.Name)
	case documentValue:
		return "document"
	default:
		return fmt.Sprintf("%T", v)
	}
}

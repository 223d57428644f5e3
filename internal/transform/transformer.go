package transform

import (
	"context"
	"fmt"

	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/internal/ctxlog"
	"github.com/specialistvlad/cogent/model"
)

// reducer turns the reduced children of one node into that node's value.
type reducer func(t *Transformer, ctx context.Context, c *cursor) (value, error)

// reducers maps each production to its reducer. The traversal itself never
// inspects production names.
var reducers = map[cst.Production]reducer{
	cst.Start:         reduceStart,
	cst.Module:        reduceModule,
	cst.ModuleBody:    reduceModuleBody,
	cst.TypeDecl:      reduceTypeDecl,
	cst.EnumDecl:      reduceEnumDecl,
	cst.EnumItem:      reduceEnumItem,
	cst.TypeExpr:      reduceTypeExpr,
	cst.TypeExprParam: reduceTypeExprParam,
	cst.TypeName:      reduceTypeName,
	cst.ImportDecl:    reduceImportDecl,
	cst.GoalDecl:      textClause("goal", fieldGoal),
	cst.InputsDecl:    reduceInputsDecl,
	cst.InputList:     reduceInputList,
	cst.InputItem:     reduceInputItem,
	cst.ContextDecl:   textClause("context", fieldContext),
	cst.ProcessDecl:   reduceProcessDecl,
	cst.ProcessList:   reduceProcessList,
	cst.ProcessStep:   reduceProcessStep,
	cst.ForLoop:       reduceForLoop,
	cst.WhileLoop:     reduceWhileLoop,
	cst.FeedbackDecl:  textClause("feedback", fieldFeedback),
	cst.Annotation:    reduceAnnotation,
	cst.AnnotArgs:     reduceAnnotationArgs,
	cst.AnnotArg:      reduceAnnotationArg,
}

// Options tune the transformer.
type Options struct {
	// Lenient keeps a process step that matches no known form as plain text
	// when it is a single identifier or number, instead of failing.
	Lenient bool
}

// Transformer reduces concrete syntax trees to modules. It holds no state
// between calls and is safe for concurrent use.
type Transformer struct {
	opts Options
}

// New creates a Transformer.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Transform reduces a tree rooted at a `start` node to its modules in source
// order. A tree rooted at a single `module` node is accepted as a one-module
// document. The tree is not modified, so transforming the same tree twice
// yields structurally equal results.
func (t *Transformer) Transform(ctx context.Context, root *cst.Node) ([]*model.Module, error) {
	if root == nil {
		return nil, &StructuralError{Production: cst.Start, ChildIndex: -1, Reason: "tree is empty"}
	}

	v, err := t.reduce(ctx, root)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case documentValue:
		return v.modules, nil
	case moduleValue:
		return []*model.Module{v.module}, nil
	default:
		return nil, nodeError(root, "root reduced to %s, expected a document or module", describe(v))
	}
}

// TransformModule is Transform for trees holding exactly one module.
func (t *Transformer) TransformModule(ctx context.Context, root *cst.Node) (*model.Module, error) {
	modules, err := t.Transform(ctx, root)
	if err != nil {
		return nil, err
	}
	if len(modules) != 1 {
		return nil, fmt.Errorf("expected exactly one module, found %d", len(modules))
	}
	return modules[0], nil
}

// reduce transforms n bottom-up: children first, then the reducer registered
// for n's production.
func (t *Transformer) reduce(ctx context.Context, n *cst.Node) (value, error) {
	vals := make([]value, len(n.Children))
	for i, child := range n.Children {
		switch child := child.(type) {
		case *cst.Node:
			if child == nil {
				return nil, &StructuralError{Production: n.Production, ChildIndex: i, Reason: "child node is nil", Range: n.Range}
			}
			v, err := t.reduce(ctx, child)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		case cst.Token:
			vals[i] = tokenValue{tok: child}
		default:
			return nil, &StructuralError{Production: n.Production, ChildIndex: i, Reason: fmt.Sprintf("unsupported child %T", child), Range: n.Range}
		}
	}

	fn, ok := reducers[n.Production]
	if !ok {
		return nil, nodeError(n, "no reducer for production %q", n.Production)
	}

	ctxlog.FromContext(ctx).Debug("Reducing node.", "production", n.Production, "children", len(vals))
	return fn(t, ctx, newCursor(n, vals))
}

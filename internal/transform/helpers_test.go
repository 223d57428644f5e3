package transform

import (
	"context"
	"testing"

	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/internal/grammar"
	"github.com/specialistvlad/cogent/internal/testutil"
	"github.com/specialistvlad/cogent/model"
	"github.com/stretchr/testify/require"
)

// parseTree runs the grammar engine and fails the test on syntax errors.
func parseTree(t *testing.T, src string) *cst.Node {
	t.Helper()
	root, diags := grammar.Parse("test.cg", []byte(testutil.Unindent(src)))
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
	return root
}

// transformSource parses and transforms src with default options.
func transformSource(t *testing.T, src string) []*model.Module {
	t.Helper()
	modules, err := New(Options{}).Transform(context.Background(), parseTree(t, src))
	require.NoError(t, err)
	return modules
}

// parseFunc adapts the grammar and transformer for testutil.RunModuleParsingTests.
func parseFunc(src string) ([]*model.Module, error) {
	root, diags := grammar.Parse("test.cg", []byte(src))
	if diags.HasErrors() {
		return nil, diags
	}
	return New(Options{}).Transform(context.Background(), root)
}

// Builders for hand-assembled trees.

func goalNode(text string) *cst.Node {
	return cst.NewNode(cst.GoalDecl, cst.Kw("goal"), cst.P(":"), cst.Str(text))
}

func bodyNode(clauses ...cst.Child) *cst.Node {
	return cst.NewNode(cst.ModuleBody, clauses...)
}

func moduleNode(name string, children ...cst.Child) *cst.Node {
	all := []cst.Child{cst.Kw("module"), cst.Id(name), cst.P("{")}
	all = append(all, children...)
	all = append(all, cst.P("}"))
	return cst.NewNode(cst.Module, all...)
}

func startNode(modules ...cst.Child) *cst.Node {
	return cst.NewNode(cst.Start, modules...)
}

func stepsNode(steps ...cst.Child) *cst.Node {
	children := []cst.Child{cst.P("[")}
	for i, s := range steps {
		if i > 0 {
			children = append(children, cst.P(","))
		}
		children = append(children, s)
	}
	children = append(children, cst.P("]"))
	return cst.NewNode(cst.ProcessList, children...)
}

func processNode(steps ...cst.Child) *cst.Node {
	return cst.NewNode(cst.ProcessDecl, cst.Kw("process"), cst.P(":"), stepsNode(steps...))
}

func stepNode(children ...cst.Child) *cst.Node {
	return cst.NewNode(cst.ProcessStep, children...)
}

func annotationNode(name string, args ...string) *cst.Node {
	children := []cst.Child{cst.P("@"), cst.Id(name)}
	if len(args) > 0 {
		argChildren := []cst.Child{cst.P("(")}
		for _, a := range args {
			argChildren = append(argChildren, cst.NewNode(cst.AnnotArg, cst.Str(a)))
		}
		argChildren = append(argChildren, cst.P(")"))
		children = append(children, cst.NewNode(cst.AnnotArgs, argChildren...))
	}
	return cst.NewNode(cst.Annotation, children...)
}

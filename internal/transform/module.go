package transform

import (
	"context"

	"github.com/specialistvlad/cogent/internal/ctxlog"
	"github.com/specialistvlad/cogent/model"
)

// module_body := clause*
//
// The grammar already rejects duplicated clauses in source; a hand-assembled
// tree can still carry them, which is a structural error here.
func reduceModuleBody(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	var body bodyValue
	seen := make(map[fieldKind]bool)
	for !c.done() {
		fv, ok := c.peek().(fieldValue)
		if !ok {
			return nil, c.unexpected("module clause")
		}
		if seen[fv.kind] {
			return nil, c.errorf("duplicate %s clause", fv.kind)
		}
		seen[fv.kind] = true

		switch fv.kind {
		case fieldGoal:
			body.goal = model.StringPtr(fv.text)
		case fieldInputs:
			body.inputs = fv.inputs
		case fieldContext:
			body.context = model.StringPtr(fv.text)
		case fieldProcess:
			body.process = fv.steps
		case fieldFeedback:
			body.feedback = model.StringPtr(fv.text)
		}
		c.next()
	}
	return body, nil
}

// moduleBuilder accumulates the parts of one module while its children are
// consumed. It lives only for the duration of reduceModule.
type moduleBuilder struct {
	name    string
	anns    model.Annotations
	imports []string
	types   map[string]model.TypeDecl
	body    *bodyValue
}

func (b *moduleBuilder) addDecl(ctx context.Context, d declValue) {
	if b.types == nil {
		b.types = make(map[string]model.TypeDecl)
	}
	if prev, ok := b.types[d.name]; ok {
		ctxlog.FromContext(ctx).Warn("Type declared more than once; the later declaration wins.",
			"module", b.name, "type", d.name, "previous", prev.DeclKind().String(), "current", d.decl.DeclKind().String())
	}
	b.types[d.name] = d.decl
}

func (b *moduleBuilder) build(c *cursor) (*model.Module, error) {
	if b.body == nil || b.body.goal == nil {
		return nil, nodeError(c.node, "module %q has no goal", b.name)
	}
	m := &model.Module{
		Name:        b.name,
		Goal:        *b.body.goal,
		Inputs:      b.body.inputs,
		Context:     b.body.context,
		Process:     b.body.process,
		Feedback:    b.body.feedback,
		Imports:     b.imports,
		Types:       b.types,
		Annotations: b.anns,
		Range:       c.node.Range,
	}
	if m.Inputs == nil {
		m.Inputs = []model.InputDecl{}
	}
	if m.Process == nil {
		m.Process = []model.Step{}
	}
	if m.Imports == nil {
		m.Imports = []string{}
	}
	if m.Types == nil {
		m.Types = map[string]model.TypeDecl{}
	}
	return m, nil
}

// reduceModule assembles a Module from the reduced children of a module
// node: annotations, the `module` keyword and name, imports, type
// declarations and finally the body.
func reduceModule(_ *Transformer, ctx context.Context, c *cursor) (value, error) {
	b := &moduleBuilder{anns: c.annotations()}

	if c.atKeyword("module") {
		c.next()
	}
	name, err := c.ident("module name")
	if err != nil {
		return nil, err
	}
	b.name = name

	for {
		iv, ok := c.peek().(importValue)
		if !ok {
			break
		}
		b.imports = append(b.imports, iv.name)
		c.next()
	}

	for {
		dv, ok := c.peek().(declValue)
		if !ok {
			break
		}
		b.addDecl(ctx, dv)
		c.next()
	}

	if bv, ok := c.peek().(bodyValue); ok {
		b.body = &bv
		c.next()
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	m, err := b.build(c)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Assembled module.",
		"module", m.Name, "inputs", len(m.Inputs), "steps", len(m.Process),
		"imports", len(m.Imports), "types", len(m.Types))
	return moduleValue{module: m}, nil
}

// reduceStart collects the modules of a document in source order. Values
// that are not modules are dropped.
func reduceStart(_ *Transformer, ctx context.Context, c *cursor) (value, error) {
	modules := []*model.Module{}
	for !c.done() {
		v := c.next()
		mv, ok := v.(moduleValue)
		if !ok {
			ctxlog.FromContext(ctx).Debug("Discarding non-module value in document.", "value", describe(v))
			continue
		}
		modules = append(modules, mv.module)
	}
	return documentValue{modules: modules}, nil
}

package transform

import (
	"context"

	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/internal/ctxlog"
	"github.com/specialistvlad/cogent/model"
)

// process_decl := "process" ":" process_list
func reduceProcessDecl(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("process"); err != nil {
		return nil, err
	}
	steps, err := c.steps("process step list")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return fieldValue{kind: fieldProcess, steps: steps}, nil
}

// process_list := "[" (process_step ("," process_step)*)? "]"
//
// A bare string token is accepted as a plain step so hand-assembled trees can
// skip the process_step wrapper.
func reduceProcessList(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	steps := []model.Step{}
	for !c.done() {
		switch v := c.peek().(type) {
		case stepValue:
			steps = append(steps, v.step)
			c.next()
		case tokenValue:
			if v.tok.Kind != cst.String {
				return nil, c.unexpected("process step")
			}
			text, err := c.text("process step")
			if err != nil {
				return nil, err
			}
			steps = append(steps, model.Plain(text))
		default:
			return nil, c.unexpected("process step")
		}
	}
	return stepsValue{steps: steps}, nil
}

// reduceProcessStep classifies one process step. Leading annotations are
// collected first; the remainder is matched by its leading keyword or by the
// sub-production that produced it:
//
//	STRING                                   plain step
//	for_loop | while_loop                    the loop built by that reducer
//	"try" steps                              try step without catch
//	"try" steps "catch" NAME steps           try step with catch
//
// Anything else is a structural error, unless the transformer is lenient and
// the remainder is a single identifier or number, which is kept as plain text.
func reduceProcessStep(t *Transformer, ctx context.Context, c *cursor) (value, error) {
	anns := c.annotations()

	var step model.Step
	switch v := c.peek().(type) {
	case stepValue:
		c.next()
		step = v.step
	case tokenValue:
		switch {
		case v.tok.Kind == cst.String:
			text, err := c.text("step text")
			if err != nil {
				return nil, err
			}
			step = model.Plain(text)
		case v.tok.Is(cst.Keyword, "try"):
			try, err := classifyTry(c)
			if err != nil {
				return nil, err
			}
			step = try
		}
	}

	if step == nil {
		fallback, err := t.fallbackStep(ctx, c)
		if err != nil {
			return nil, err
		}
		step = fallback
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	setStepAnnotations(step, anns)
	return stepValue{step: step}, nil
}

func classifyTry(c *cursor) (*model.TryStep, error) {
	if err := c.keyword("try"); err != nil {
		return nil, err
	}
	body, err := c.steps("try body")
	if err != nil {
		return nil, err
	}
	try := &model.TryStep{Body: body}
	if !c.atKeyword("catch") {
		return try, nil
	}

	c.next()
	v, err := c.ident("catch variable")
	if err != nil {
		return nil, err
	}
	catchBody, err := c.steps("catch body")
	if err != nil {
		return nil, err
	}
	try.Catch = &model.CatchClause{Var: v, Body: catchBody}
	return try, nil
}

func (t *Transformer) fallbackStep(ctx context.Context, c *cursor) (model.Step, error) {
	v := c.peek()
	if !t.opts.Lenient {
		return nil, c.errorf("%s matches no process step form", describe(v))
	}
	tv, ok := v.(tokenValue)
	if !ok || (tv.tok.Kind != cst.Ident && tv.tok.Kind != cst.Number) {
		return nil, c.errorf("%s matches no process step form", describe(v))
	}
	ctxlog.FromContext(ctx).Warn("Process step matched no known form; keeping it as plain text.",
		"text", tv.tok.Text, "range", c.rangeHere().String())
	c.next()
	return model.Plain(tv.tok.Text), nil
}

// setStepAnnotations attaches annotations to a step built earlier in the same
// traversal. The step is not shared yet, so setting the field is safe.
func setStepAnnotations(s model.Step, anns model.Annotations) {
	if anns == nil {
		return
	}
	switch v := s.(type) {
	case *model.PlainStep:
		v.Annotations = anns
	case *model.ForStep:
		v.Annotations = anns
	case *model.WhileStep:
		v.Annotations = anns
	case *model.TryStep:
		v.Annotations = anns
	}
}

// for_loop := "for" NAME "in" NAME ":" process_list
func reduceForLoop(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("for"); err != nil {
		return nil, err
	}
	loopVar, err := c.ident("loop variable")
	if err != nil {
		return nil, err
	}
	if err := c.keyword("in"); err != nil {
		return nil, err
	}
	iterable, err := c.ident("iterable")
	if err != nil {
		return nil, err
	}
	body, err := c.steps("loop body")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return stepValue{step: &model.ForStep{Var: loopVar, Iterable: iterable, Body: body}}, nil
}

// while_loop := "while" (STRING | NAME) ":" process_list
func reduceWhileLoop(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("while"); err != nil {
		return nil, err
	}

	var cond string
	tv, ok := c.peek().(tokenValue)
	switch {
	case ok && tv.tok.Kind == cst.String:
		s, err := c.text("loop condition")
		if err != nil {
			return nil, err
		}
		cond = s
	default:
		id, err := c.ident("loop condition")
		if err != nil {
			return nil, err
		}
		cond = id
	}

	body, err := c.steps("loop body")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return stepValue{step: &model.WhileStep{Condition: cond, Body: body}}, nil
}

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/model"
)

// cursor walks the reduced children of one node. Punctuation is skipped
// transparently; positions stay aligned with node.Children so errors can name
// the exact child index.
type cursor struct {
	node *cst.Node
	vals []value
	pos  int
}

func newCursor(n *cst.Node, vals []value) *cursor {
	return &cursor{node: n, vals: vals}
}

func (c *cursor) skipPunct() {
	for c.pos < len(c.vals) {
		tv, ok := c.vals[c.pos].(tokenValue)
		if !ok || tv.tok.Kind != cst.Punct {
			return
		}
		c.pos++
	}
}

// peek returns the next significant value, or nil at the end.
func (c *cursor) peek() value {
	c.skipPunct()
	if c.pos >= len(c.vals) {
		return nil
	}
	return c.vals[c.pos]
}

func (c *cursor) next() value {
	v := c.peek()
	if v != nil {
		c.pos++
	}
	return v
}

func (c *cursor) done() bool {
	return c.peek() == nil
}

// errorf builds a StructuralError pointing at the current child.
func (c *cursor) errorf(format string, args ...any) *StructuralError {
	c.skipPunct()
	rng := c.node.Range
	if c.pos < len(c.node.Children) {
		rng = c.node.Children[c.pos].SrcRange()
	}
	return &StructuralError{
		Production: c.node.Production,
		ChildIndex: c.pos,
		Reason:     fmt.Sprintf(format, args...),
		Range:      rng,
	}
}

func (c *cursor) unexpected(expected string) *StructuralError {
	return c.errorf("expected %s, found %s", expected, describe(c.peek()))
}

// end fails when significant children remain.
func (c *cursor) end() error {
	if !c.done() {
		return c.unexpected("end of children")
	}
	return nil
}

// rangeHere is the source range of the current child, or of the node when the
// children are exhausted.
func (c *cursor) rangeHere() hcl.Range {
	c.skipPunct()
	if c.pos < len(c.node.Children) {
		return c.node.Children[c.pos].SrcRange()
	}
	return c.node.Range
}

// annotations consumes a leading run of annotation values.
func (c *cursor) annotations() model.Annotations {
	anns, n := collectAnnotations(c.vals[c.pos:])
	c.pos += n
	return anns
}

func (c *cursor) atKeyword(word string) bool {
	tv, ok := c.peek().(tokenValue)
	return ok && tv.tok.Is(cst.Keyword, word)
}

// keyword consumes the given keyword.
func (c *cursor) keyword(word string) error {
	if !c.atKeyword(word) {
		return c.unexpected(fmt.Sprintf("keyword %q", word))
	}
	c.pos++
	return nil
}

// ident consumes an identifier token.
func (c *cursor) ident(what string) (string, error) {
	tv, ok := c.peek().(tokenValue)
	if !ok || tv.tok.Kind != cst.Ident {
		return "", c.unexpected(what)
	}
	if tv.tok.Text == "" {
		return "", c.errorf("%s is empty", what)
	}
	c.pos++
	return tv.tok.Text, nil
}

// text consumes a string token and strips its delimiters.
func (c *cursor) text(what string) (string, error) {
	tv, ok := c.peek().(tokenValue)
	if !ok || tv.tok.Kind != cst.String {
		return "", c.unexpected(what)
	}
	s, err := unquote(tv.tok.Text)
	if err != nil {
		return "", c.errorf("%s %s is not a valid string literal", what, tv.tok.Text)
	}
	c.pos++
	return s, nil
}

// steps consumes a reduced process_list.
func (c *cursor) steps(what string) ([]model.Step, error) {
	sv, ok := c.peek().(stepsValue)
	if !ok {
		return nil, c.unexpected(what)
	}
	c.pos++
	return sv.steps, nil
}

// typeExpr consumes a type expression. A bare identifier is accepted as a
// parameterless type.
func (c *cursor) typeExpr(what string) (*model.TypeExpr, error) {
	switch v := c.peek().(type) {
	case typeExprValue:
		c.pos++
		return v.expr, nil
	case nameValue:
		c.pos++
		return &model.TypeExpr{Name: v.name}, nil
	case tokenValue:
		if v.tok.Kind == cst.Ident && v.tok.Text != "" {
			c.pos++
			return &model.TypeExpr{Name: v.tok.Text}, nil
		}
	}
	return nil, c.unexpected(what)
}

// unquote strips the delimiters of a string literal. Text that carries no
// delimiters is taken as already unquoted.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) && !strings.HasPrefix(s, "`") {
		return s, nil
	}
	return strconv.Unquote(s)
}

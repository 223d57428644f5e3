// Package cst defines the concrete syntax tree handed from the grammar engine
// to the transformer. Nodes are tagged with production names; children are
// either further nodes or raw tokens. The tree is never mutated after the
// grammar engine returns it.
package cst

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Production is the name of a grammar rule that produced a Node.
type Production string

// The production vocabulary shared by the grammar engine and the transformer.
// Renaming a production requires updating the reducer registration in the
// transform package, not the traversal.
const (
	Start         Production = "start"
	Module        Production = "module"
	ModuleBody    Production = "module_body"
	TypeDecl      Production = "type_decl"
	EnumDecl      Production = "enum_decl"
	EnumItem      Production = "enum_item"
	TypeExpr      Production = "type_expr"
	TypeExprParam Production = "type_expr_param"
	TypeName      Production = "type_name"
	ImportDecl    Production = "import_decl"
	GoalDecl      Production = "goal_decl"
	InputsDecl    Production = "inputs_decl"
	InputList     Production = "input_list"
	InputItem     Production = "input_item"
	ContextDecl   Production = "context_decl"
	ProcessDecl   Production = "process_decl"
	ProcessList   Production = "process_list"
	ProcessStep   Production = "process_step"
	ForLoop       Production = "for_loop"
	WhileLoop     Production = "while_loop"
	FeedbackDecl  Production = "feedback_decl"
	Annotation    Production = "annotation"
	AnnotArgs     Production = "annotation_args"
	AnnotArg      Production = "annotation_arg"
)

// TokenKind classifies a raw token.
type TokenKind int

const (
	Punct TokenKind = iota
	Keyword
	Ident
	String
	Number
)

func (k TokenKind) String() string {
	switch k {
	case Punct:
		return "punct"
	case Keyword:
		return "keyword"
	case Ident:
		return "ident"
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Child is either a *Node or a Token.
type Child interface {
	SrcRange() hcl.Range
	isChild()
}

// Token is a raw lexical token. String tokens keep their quote delimiters;
// stripping them is the reducers' job.
type Token struct {
	Kind  TokenKind
	Text  string
	Range hcl.Range
}

func (t Token) SrcRange() hcl.Range { return t.Range }
func (Token) isChild()              {}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Node is an interior tree node.
type Node struct {
	Production Production
	Children   []Child
	Range      hcl.Range
}

func (n *Node) SrcRange() hcl.Range { return n.Range }
func (*Node) isChild()              {}

// NewNode builds a node whose range spans its first and last child.
func NewNode(p Production, children ...Child) *Node {
	n := &Node{Production: p, Children: children}
	if len(children) > 0 {
		n.Range = hcl.RangeBetween(children[0].SrcRange(), children[len(children)-1].SrcRange())
	}
	return n
}

// Walk visits every node below and including n in post-order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		if child, ok := c.(*Node); ok {
			Walk(child, fn)
		}
	}
	fn(n)
}

// Sexp renders the tree as an S-expression, mostly for debugging and test
// failure output.
func Sexp(n *Node) string {
	var b strings.Builder
	writeSexp(&b, n)
	return b.String()
}

func writeSexp(b *strings.Builder, n *Node) {
	b.WriteByte('(')
	b.WriteString(string(n.Production))
	for _, c := range n.Children {
		b.WriteByte(' ')
		switch v := c.(type) {
		case *Node:
			writeSexp(b, v)
		case Token:
			b.WriteString(v.Text)
		}
	}
	b.WriteByte(')')
}

package grammar

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/cogent/internal/cst"
)

// bodyClauses are the keywords that open a module body clause, mapped to the
// production each one produces.
var bodyClauses = map[string]cst.Production{
	"goal":     cst.GoalDecl,
	"inputs":   cst.InputsDecl,
	"context":  cst.ContextDecl,
	"process":  cst.ProcessDecl,
	"feedback": cst.FeedbackDecl,
}

// bailout is raised to unwind the parser at the first syntax error.
type bailout struct{}

type parser struct {
	toks  []lexToken
	pos   int
	diags hcl.Diagnostics
}

// Parse turns source text into a concrete syntax tree rooted at a `start`
// node holding one `module` node per declared module. Any syntax error stops
// parsing; the returned diagnostics then describe the first problem found and
// the tree is nil.
func Parse(filename string, src []byte) (root *cst.Node, diags hcl.Diagnostics) {
	toks, lexDiags := lex(filename, src)
	if lexDiags.HasErrors() {
		return nil, lexDiags
	}

	p := &parser{toks: toks}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			root, diags = nil, p.diags
		}
	}()

	return p.parseStart(), p.diags
}

func (p *parser) peek() lexToken {
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) lexToken {
	if i := p.pos + offset; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() lexToken {
	tok := p.toks[p.pos]
	if tok.kind != lexEOF {
		p.pos++
	}
	return tok
}

func (p *parser) fail(rng hcl.Range, summary, detail string) {
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	})
	panic(bailout{})
}

func (p *parser) unexpected(expected string) {
	tok := p.peek()
	p.fail(tok.rng, "Unexpected token", fmt.Sprintf("Expected %s, found %s.", expected, describe(tok)))
}

func describe(tok lexToken) string {
	switch tok.kind {
	case lexEOF:
		return "end of file"
	case lexString:
		return "string " + tok.text
	case lexNumber:
		return "number " + tok.text
	default:
		return fmt.Sprintf("%q", tok.text)
	}
}

func (p *parser) atPunct(text string) bool {
	tok := p.peek()
	return tok.kind == lexPunct && tok.text == text
}

func (p *parser) atKeyword(word string) bool {
	tok := p.peek()
	return tok.kind == lexIdent && tok.text == word
}

func (p *parser) punct(text string) cst.Token {
	if !p.atPunct(text) {
		p.unexpected(fmt.Sprintf("%q", text))
	}
	tok := p.next()
	return cst.Token{Kind: cst.Punct, Text: tok.text, Range: tok.rng}
}

func (p *parser) keyword(word string) cst.Token {
	if !p.atKeyword(word) {
		p.unexpected(fmt.Sprintf("keyword %q", word))
	}
	tok := p.next()
	return cst.Token{Kind: cst.Keyword, Text: tok.text, Range: tok.rng}
}

func (p *parser) ident(what string) cst.Token {
	if p.peek().kind != lexIdent {
		p.unexpected(what)
	}
	tok := p.next()
	return cst.Token{Kind: cst.Ident, Text: tok.text, Range: tok.rng}
}

func (p *parser) str(what string) cst.Token {
	if p.peek().kind != lexString {
		p.unexpected(what)
	}
	tok := p.next()
	return cst.Token{Kind: cst.String, Text: tok.text, Range: tok.rng}
}

// commaList parses `open item ("," item)* ","? close`, allowing an empty list
// when allowEmpty is set.
func (p *parser) commaList(open, close string, allowEmpty bool, item func() cst.Child) []cst.Child {
	children := []cst.Child{p.punct(open)}
	if p.atPunct(close) {
		if !allowEmpty {
			p.unexpected("at least one item")
		}
		return append(children, p.punct(close))
	}
	for {
		children = append(children, item())
		if !p.atPunct(",") {
			break
		}
		children = append(children, p.punct(","))
		if p.atPunct(close) {
			break
		}
	}
	return append(children, p.punct(close))
}

// start := module+
func (p *parser) parseStart() *cst.Node {
	var modules []cst.Child
	for p.peek().kind != lexEOF {
		modules = append(modules, p.parseModule())
	}
	if len(modules) == 0 {
		p.fail(p.peek().rng, "Missing module", "A source file must declare at least one module.")
	}
	return cst.NewNode(cst.Start, modules...)
}

// annotation* prefix shared by modules, inputs and steps.
func (p *parser) parseAnnotations() []cst.Child {
	var anns []cst.Child
	for p.atPunct("@") {
		anns = append(anns, p.parseAnnotation())
	}
	return anns
}

// annotation := "@" NAME annotation_args?
func (p *parser) parseAnnotation() *cst.Node {
	children := []cst.Child{p.punct("@"), p.ident("annotation name")}
	if p.atPunct("(") {
		args := p.commaList("(", ")", true, func() cst.Child {
			tok := p.peek()
			var arg cst.Token
			switch tok.kind {
			case lexString:
				arg = p.str("annotation argument")
			case lexIdent:
				arg = p.ident("annotation argument")
			case lexNumber:
				p.next()
				arg = cst.Token{Kind: cst.Number, Text: tok.text, Range: tok.rng}
			default:
				p.unexpected("an annotation argument")
			}
			return cst.NewNode(cst.AnnotArg, arg)
		})
		children = append(children, cst.NewNode(cst.AnnotArgs, args...))
	}
	return cst.NewNode(cst.Annotation, children...)
}

// module := annotation* "module" NAME "{" import_decl* (type_decl | enum_decl)* module_body "}"
func (p *parser) parseModule() *cst.Node {
	children := p.parseAnnotations()
	children = append(children, p.keyword("module"), p.ident("module name"), p.punct("{"))

	for p.atKeyword("import") && p.peekAt(1).kind == lexIdent {
		children = append(children, cst.NewNode(cst.ImportDecl, p.keyword("import"), p.ident("imported module name")))
	}

	for p.peekAt(1).kind == lexIdent && (p.atKeyword("type") || p.atKeyword("enum")) {
		if p.atKeyword("type") {
			children = append(children, p.parseTypeDecl())
		} else {
			children = append(children, p.parseEnumDecl())
		}
	}

	children = append(children, p.parseModuleBody())
	children = append(children, p.punct("}"))
	return cst.NewNode(cst.Module, children...)
}

// type_decl := "type" NAME "=" type_expr
func (p *parser) parseTypeDecl() *cst.Node {
	return cst.NewNode(cst.TypeDecl,
		p.keyword("type"), p.ident("type name"), p.punct("="), p.parseTypeExpr())
}

// enum_decl := "enum" NAME "{" enum_item ("," enum_item)* ","? "}"
func (p *parser) parseEnumDecl() *cst.Node {
	children := []cst.Child{p.keyword("enum"), p.ident("enum name")}
	children = append(children, p.commaList("{", "}", false, func() cst.Child {
		return cst.NewNode(cst.EnumItem, p.ident("enum member"))
	})...)
	return cst.NewNode(cst.EnumDecl, children...)
}

// type_expr := type_name ("<" type_expr ">")?
func (p *parser) parseTypeExpr() *cst.Node {
	children := []cst.Child{cst.NewNode(cst.TypeName, p.ident("type name"))}
	if p.atPunct("<") {
		children = append(children, cst.NewNode(cst.TypeExprParam,
			p.punct("<"), p.parseTypeExpr(), p.punct(">")))
	}
	return cst.NewNode(cst.TypeExpr, children...)
}

// module_body := clause*, with exactly one goal and at most one of each other clause.
func (p *parser) parseModuleBody() *cst.Node {
	start := p.peek().rng
	seen := make(map[string]hcl.Range)
	var children []cst.Child

	for !p.atPunct("}") {
		tok := p.peek()
		prod, ok := bodyClauses[tok.text]
		if tok.kind != lexIdent || !ok || !p.isClauseStart() {
			p.unexpected("a module clause (goal, inputs, context, process or feedback)")
		}
		if prev, dup := seen[tok.text]; dup {
			p.fail(tok.rng, fmt.Sprintf("Duplicate %s clause", tok.text),
				fmt.Sprintf("A module may declare only one %s clause; the first one is at %s.", tok.text, prev.String()))
		}
		seen[tok.text] = tok.rng
		children = append(children, p.parseClause(tok.text, prod))
	}

	if _, ok := seen["goal"]; !ok {
		p.fail(hcl.RangeBetween(start, p.peek().rng), "Missing goal clause", "Every module must declare a goal.")
	}

	return cst.NewNode(cst.ModuleBody, children...)
}

func (p *parser) isClauseStart() bool {
	next := p.peekAt(1)
	return next.kind == lexPunct && next.text == ":"
}

func (p *parser) parseClause(word string, prod cst.Production) *cst.Node {
	kw := p.keyword(word)
	colon := p.punct(":")
	switch prod {
	case cst.InputsDecl:
		return cst.NewNode(prod, kw, colon, p.parseInputList())
	case cst.ProcessDecl:
		return cst.NewNode(prod, kw, colon, p.parseProcessList())
	default:
		return cst.NewNode(prod, kw, colon, p.str(word+" text"))
	}
}

// input_list := "[" (input_item ("," input_item)* ","?)? "]"
func (p *parser) parseInputList() *cst.Node {
	return cst.NewNode(cst.InputList, p.commaList("[", "]", true, func() cst.Child {
		return p.parseInputItem()
	})...)
}

// input_item := annotation* NAME ":" type_expr
func (p *parser) parseInputItem() *cst.Node {
	children := p.parseAnnotations()
	children = append(children, p.ident("input name"), p.punct(":"), p.parseTypeExpr())
	return cst.NewNode(cst.InputItem, children...)
}

// process_list := "[" (process_step ("," process_step)* ","?)? "]"
func (p *parser) parseProcessList() *cst.Node {
	return cst.NewNode(cst.ProcessList, p.commaList("[", "]", true, func() cst.Child {
		return p.parseProcessStep()
	})...)
}

// process_step := annotation* (STRING | for_loop | while_loop | "try" process_list ("catch" NAME process_list)?)
func (p *parser) parseProcessStep() *cst.Node {
	children := p.parseAnnotations()
	tok := p.peek()
	switch {
	case tok.kind == lexString:
		children = append(children, p.str("step text"))
	case p.atKeyword("for"):
		children = append(children, p.parseForLoop())
	case p.atKeyword("while"):
		children = append(children, p.parseWhileLoop())
	case p.atKeyword("try"):
		children = append(children, p.keyword("try"), p.parseProcessList())
		if p.atKeyword("catch") {
			children = append(children, p.keyword("catch"), p.ident("catch variable"), p.parseProcessList())
		}
	default:
		p.unexpected("a process step (string, for, while or try)")
	}
	return cst.NewNode(cst.ProcessStep, children...)
}

// for_loop := "for" NAME "in" NAME ":" process_list
func (p *parser) parseForLoop() *cst.Node {
	return cst.NewNode(cst.ForLoop,
		p.keyword("for"), p.ident("loop variable"), p.keyword("in"), p.ident("iterable"),
		p.punct(":"), p.parseProcessList())
}

// while_loop := "while" (STRING | NAME) ":" process_list
func (p *parser) parseWhileLoop() *cst.Node {
	kw := p.keyword("while")
	var cond cst.Token
	if p.peek().kind == lexString {
		cond = p.str("loop condition")
	} else {
		cond = p.ident("loop condition")
	}
	return cst.NewNode(cst.WhileLoop, kw, cond, p.punct(":"), p.parseProcessList())
}

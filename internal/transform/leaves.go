package transform

import (
	"context"

	"github.com/specialistvlad/cogent/internal/cst"
	"github.com/specialistvlad/cogent/internal/ctxlog"
	"github.com/specialistvlad/cogent/model"
)

// type_name := NAME
func reduceTypeName(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	name, err := c.ident("type name")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return nameValue{name: name}, nil
}

// type_expr_param := "<" type_expr ">"
func reduceTypeExprParam(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	param, err := c.typeExpr("type parameter")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return typeExprValue{expr: param}, nil
}

// type_expr := type_name type_expr_param?
func reduceTypeExpr(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	var name string
	switch v := c.peek().(type) {
	case nameValue:
		name = v.name
		c.next()
	default:
		id, err := c.ident("type name")
		if err != nil {
			return nil, err
		}
		name = id
	}

	expr := &model.TypeExpr{Name: name}
	if !c.done() {
		param, err := c.typeExpr("type parameter")
		if err != nil {
			return nil, err
		}
		expr.Param = param
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return typeExprValue{expr: expr}, nil
}

// type_decl := "type" NAME "=" type_expr
func reduceTypeDecl(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("type"); err != nil {
		return nil, err
	}
	name, err := c.ident("type name")
	if err != nil {
		return nil, err
	}
	expr, err := c.typeExpr("aliased type")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return declValue{name: name, decl: expr}, nil
}

// enum_item := NAME
func reduceEnumItem(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	name, err := c.ident("enum member")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return nameValue{name: name}, nil
}

// enum_decl := "enum" NAME "{" enum_item ("," enum_item)* "}"
func reduceEnumDecl(_ *Transformer, ctx context.Context, c *cursor) (value, error) {
	if err := c.keyword("enum"); err != nil {
		return nil, err
	}
	name, err := c.ident("enum name")
	if err != nil {
		return nil, err
	}

	var members []string
	for !c.done() {
		switch v := c.peek().(type) {
		case nameValue:
			members = append(members, v.name)
			c.next()
		default:
			member, err := c.ident("enum member")
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
	}
	if len(members) == 0 {
		return nil, c.errorf("enum %q has no members", name)
	}

	enum := model.NewEnumType(name, members...)
	if dropped := len(members) - len(enum.Members); dropped > 0 {
		ctxlog.FromContext(ctx).Debug("Collapsed repeated enum members.", "enum", name, "dropped", dropped)
	}
	return declValue{name: name, decl: enum}, nil
}

// import_decl := "import" NAME
func reduceImportDecl(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("import"); err != nil {
		return nil, err
	}
	name, err := c.ident("imported module name")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return importValue{name: name}, nil
}

// annotation_arg := STRING | NAME | NUMBER
func reduceAnnotationArg(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	tv, ok := c.peek().(tokenValue)
	if !ok {
		return nil, c.unexpected("annotation argument")
	}
	var arg string
	switch tv.tok.Kind {
	case cst.String:
		s, err := c.text("annotation argument")
		if err != nil {
			return nil, err
		}
		arg = s
	case cst.Ident, cst.Number:
		arg = tv.tok.Text
		c.next()
	default:
		return nil, c.unexpected("annotation argument")
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return argValue{arg: arg}, nil
}

// annotation_args := "(" (annotation_arg ("," annotation_arg)*)? ")"
func reduceAnnotationArgs(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	args := []string{}
	for !c.done() {
		av, ok := c.peek().(argValue)
		if !ok {
			return nil, c.unexpected("annotation argument")
		}
		args = append(args, av.arg)
		c.next()
	}
	return argsValue{args: args}, nil
}

// annotation := "@" NAME annotation_args?
func reduceAnnotation(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	name, err := c.ident("annotation name")
	if err != nil {
		return nil, err
	}
	ann := model.Annotation{Name: name}
	if av, ok := c.peek().(argsValue); ok {
		if len(av.args) > 0 {
			ann.Args = av.args
		}
		c.next()
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return annotationValue{ann: ann}, nil
}

// textClause builds the reducer for a `keyword ":" STRING` clause.
func textClause(word string, kind fieldKind) reducer {
	return func(_ *Transformer, _ context.Context, c *cursor) (value, error) {
		if err := c.keyword(word); err != nil {
			return nil, err
		}
		text, err := c.text(word + " text")
		if err != nil {
			return nil, err
		}
		if err := c.end(); err != nil {
			return nil, err
		}
		return fieldValue{kind: kind, text: text}, nil
	}
}

package transform

import (
	"context"

	"github.com/specialistvlad/cogent/model"
)

// input_item := annotation* NAME ":" type_expr
func reduceInputItem(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	anns := c.annotations()
	name, err := c.ident("input name")
	if err != nil {
		return nil, err
	}
	typ, err := c.typeExpr("input type")
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return inputValue{input: model.InputDecl{Name: name, Type: typ, Annotations: anns}}, nil
}

// input_list := "[" (input_item ("," input_item)*)? "]"
func reduceInputList(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	inputs := []model.InputDecl{}
	for !c.done() {
		iv, ok := c.peek().(inputValue)
		if !ok {
			return nil, c.unexpected("input declaration")
		}
		inputs = append(inputs, iv.input)
		c.next()
	}
	return inputsValue{inputs: inputs}, nil
}

// inputs_decl := "inputs" ":" input_list
func reduceInputsDecl(_ *Transformer, _ context.Context, c *cursor) (value, error) {
	if err := c.keyword("inputs"); err != nil {
		return nil, err
	}
	iv, ok := c.peek().(inputsValue)
	if !ok {
		return nil, c.unexpected("input list")
	}
	c.next()
	if err := c.end(); err != nil {
		return nil, err
	}
	return fieldValue{kind: fieldInputs, inputs: iv.inputs}, nil
}

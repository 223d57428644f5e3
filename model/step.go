// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the process step variants.
//
// Why no execution fields?
//
// Steps are instructions addressed to an agent, not code. The model records
// their shape (plain text, loops, error handling) and leaves interpretation to
// whoever consumes the module. Bodies are plain slices, so a process is a tree:
// a body can only hold steps built before it.
package model

// StepKind identifies the variant of a Step.
type StepKind int

const (
	StepPlain StepKind = iota
	StepFor
	StepWhile
	StepTry
)

func (k StepKind) String() string {
	switch k {
	case StepFor:
		return "for"
	case StepWhile:
		return "while"
	case StepTry:
		return "try"
	default:
		return "plain"
	}
}

// Step is one entry of a process. The implementations are *PlainStep,
// *ForStep, *WhileStep and *TryStep.
type Step interface {
	Kind() StepKind
	StepAnnotations() Annotations
	isStep()
}

// PlainStep is an opaque textual instruction.
type PlainStep struct {
	Text        string
	Annotations Annotations
}

// ForStep repeats Body for every element of Iterable, bound to Var.
type ForStep struct {
	Var         string
	Iterable    string
	Body        []Step
	Annotations Annotations
}

// WhileStep repeats Body while Condition holds.
type WhileStep struct {
	Condition   string
	Body        []Step
	Annotations Annotations
}

// TryStep runs Body and, if it fails and a catch clause exists, the catch
// body with the error bound to the catch variable.
type TryStep struct {
	Body        []Step
	Catch       *CatchClause
	Annotations Annotations
}

// CatchClause is the optional error handler of a TryStep.
type CatchClause struct {
	Var  string
	Body []Step
}

func (*PlainStep) Kind() StepKind { return StepPlain }
func (*ForStep) Kind() StepKind   { return StepFor }
func (*WhileStep) Kind() StepKind { return StepWhile }
func (*TryStep) Kind() StepKind   { return StepTry }

func (s *PlainStep) StepAnnotations() Annotations { return s.Annotations }
func (s *ForStep) StepAnnotations() Annotations   { return s.Annotations }
func (s *WhileStep) StepAnnotations() Annotations { return s.Annotations }
func (s *TryStep) StepAnnotations() Annotations   { return s.Annotations }

func (*PlainStep) isStep() {}
func (*ForStep) isStep()   {}
func (*WhileStep) isStep() {}
func (*TryStep) isStep()   {}

// Plain is shorthand for an unannotated PlainStep.
func Plain(text string) *PlainStep {
	return &PlainStep{Text: text}
}

// Children returns the nested step sequences of s in source order: nothing
// for plain steps, the body for loops, and the try body followed by the catch
// body for try steps.
func Children(s Step) [][]Step {
	switch v := s.(type) {
	case *ForStep:
		return [][]Step{v.Body}
	case *WhileStep:
		return [][]Step{v.Body}
	case *TryStep:
		if v.Catch == nil {
			return [][]Step{v.Body}
		}
		return [][]Step{v.Body, v.Catch.Body}
	default:
		return nil
	}
}

// WalkSteps calls fn for every step in steps, depth first, parents before
// their bodies. Returning false from fn skips the step's bodies.
func WalkSteps(steps []Step, fn func(Step) bool) {
	for _, s := range steps {
		if !fn(s) {
			continue
		}
		for _, body := range Children(s) {
			WalkSteps(body, fn)
		}
	}
}

package grammar

import (
	"bytes"
	"fmt"
	"text/scanner"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

type lexKind int

const (
	lexEOF lexKind = iota
	lexIdent
	lexString
	lexNumber
	lexPunct
)

type lexToken struct {
	kind lexKind
	text string
	rng  hcl.Range
}

// punctuation is the set of single-character tokens the grammar uses.
var punctuation = map[rune]bool{
	'{': true, '}': true,
	'[': true, ']': true,
	'(': true, ')': true,
	'<': true, '>': true,
	':': true, ',': true,
	'=': true, '@': true,
}

// lex splits src into tokens. Whitespace and comments (`//`, `/* */` and `#`
// to end of line) are dropped. Quoted strings keep their delimiters.
func lex(filename string, src []byte) ([]lexToken, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var toks []lexToken

	var s scanner.Scanner
	s.Init(bytes.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanComments | scanner.SkipComments
	s.Error = func(s *scanner.Scanner, msg string) {
		start := toHCLPos(s.Pos())
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid token",
			Detail:   fmt.Sprintf("The source could not be tokenized: %s.", msg),
			Subject:  &hcl.Range{Filename: filename, Start: start, End: start},
		})
	}

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		text := s.TokenText()
		start := toHCLPos(s.Position)
		rng := hcl.Range{Filename: filename, Start: start, End: endPos(start, text)}

		switch {
		case tok == scanner.Ident:
			toks = append(toks, lexToken{kind: lexIdent, text: text, rng: rng})
		case tok == scanner.String || tok == scanner.RawString:
			toks = append(toks, lexToken{kind: lexString, text: text, rng: rng})
		case tok == scanner.Int || tok == scanner.Float:
			toks = append(toks, lexToken{kind: lexNumber, text: text, rng: rng})
		case tok == '#':
			for ch := s.Peek(); ch != '\n' && ch != scanner.EOF; ch = s.Peek() {
				s.Next()
			}
		case punctuation[tok]:
			toks = append(toks, lexToken{kind: lexPunct, text: text, rng: rng})
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid character",
				Detail:   fmt.Sprintf("The character %q is not valid here.", text),
				Subject:  &rng,
			})
		}
	}

	eof := toHCLPos(s.Pos())
	toks = append(toks, lexToken{kind: lexEOF, rng: hcl.Range{Filename: filename, Start: eof, End: eof}})
	return toks, diags
}

func toHCLPos(p scanner.Position) hcl.Pos {
	return hcl.Pos{Line: p.Line, Column: p.Column, Byte: p.Offset}
}

// endPos advances start over text, following newlines inside raw strings.
func endPos(start hcl.Pos, text string) hcl.Pos {
	end := start
	end.Byte += len(text)
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if r == '\n' {
			end.Line++
			end.Column = 1
			continue
		}
		end.Column++
	}
	return end
}

package cst

import "strconv"

// The helpers below build position-less tokens. They are used by callers that
// assemble trees by hand, mainly tests exercising the transformer without the
// grammar engine.

// Kw returns a keyword token.
func Kw(text string) Token { return Token{Kind: Keyword, Text: text} }

// Id returns an identifier token.
func Id(text string) Token { return Token{Kind: Ident, Text: text} }

// Str returns a string token quoting s the way the source would.
func Str(s string) Token { return Token{Kind: String, Text: strconv.Quote(s)} }

// Num returns a number token.
func Num(text string) Token { return Token{Kind: Number, Text: text} }

// P returns a punctuation token.
func P(text string) Token { return Token{Kind: Punct, Text: text} }

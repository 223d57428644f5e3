package cogent

import (
	"errors"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/cogent/internal/transform"
)

// ErrSyntax is matched by every *SyntaxError via errors.Is.
var ErrSyntax = errors.New("syntax error")

// ErrStructural is matched by every *StructuralError via errors.Is.
var ErrStructural = transform.ErrStructural

// StructuralError reports a tree that parsed but could not be assembled into
// modules. It names the production and child index where assembly stopped.
type StructuralError = transform.StructuralError

// SyntaxError reports source text rejected by the grammar engine. No
// transformation is attempted once a syntax error is found.
type SyntaxError struct {
	Filename    string
	Diagnostics hcl.Diagnostics

	src []byte
}

func (e *SyntaxError) Error() string {
	return e.Diagnostics.Error()
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Report renders the diagnostics with the offending source lines, the way
// HCL tools print them.
func (e *SyntaxError) Report() string {
	var b strings.Builder
	files := map[string]*hcl.File{e.Filename: {Bytes: e.src}}
	wr := hcl.NewDiagnosticTextWriter(&b, files, 0, false)
	if err := wr.WriteDiagnostics(e.Diagnostics); err != nil {
		return e.Error()
	}
	return b.String()
}

package transform

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/cogent/internal/cst"
)

// ErrStructural is matched by every *StructuralError via errors.Is.
var ErrStructural = errors.New("structural error")

// StructuralError reports a syntactically valid tree that cannot be assembled
// into modules. It points at the production and the child index where the
// transformer gave up, which is what is needed to diagnose a mismatch between
// the grammar and the reducers.
type StructuralError struct {
	Production cst.Production
	// ChildIndex is the position in the node's children, counting
	// punctuation. -1 means the node as a whole.
	ChildIndex int
	Reason     string
	Range      hcl.Range
}

func (e *StructuralError) Error() string {
	loc := ""
	if e.Range.Filename != "" || e.Range.Start.Line > 0 {
		loc = e.Range.String() + ": "
	}
	if e.ChildIndex < 0 {
		return fmt.Sprintf("%sstructural error in %s: %s", loc, e.Production, e.Reason)
	}
	return fmt.Sprintf("%sstructural error in %s at child %d: %s", loc, e.Production, e.ChildIndex, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

func nodeError(n *cst.Node, format string, args ...any) *StructuralError {
	return &StructuralError{
		Production: n.Production,
		ChildIndex: -1,
		Reason:     fmt.Sprintf(format, args...),
		Range:      n.Range,
	}
}

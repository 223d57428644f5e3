package testutil

import (
	"fmt"
	"testing"

	"github.com/specialistvlad/cogent/model"
	"github.com/stretchr/testify/require"
)

// ModuleTestCase defines a single scenario for parsing a module body.
type ModuleTestCase struct {
	Name string
	// Body is the content *inside* `module Test { ... }`. It can be written as
	// a readable, indented multi-line string.
	Body string
	// ExpectErr should be true if a parsing error is expected.
	ExpectErr bool
	// ErrContains is a substring that must appear in the error message if ExpectErr is true.
	ErrContains string
	// Validate performs assertions on the parsed module. It is only called if
	// ExpectErr is false.
	Validate func(t *testing.T, m *model.Module)
}

// ParseFunc parses a complete source text into modules.
type ParseFunc func(src string) ([]*model.Module, error)

// RunModuleParsingTests is a reusable harness for table-driven module tests.
// Each case body is wrapped into a module named Test before parsing.
func RunModuleParsingTests(t *testing.T, parse ParseFunc, cases []ModuleTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			src := fmt.Sprintf("module Test {\n%s\n}", Unindent(tc.Body))

			modules, err := parse(src)

			if tc.ExpectErr {
				require.Error(t, err, "Expected a parsing error, but got none")
				if tc.ErrContains != "" {
					require.Contains(t, err.Error(), tc.ErrContains, "Error message did not contain the expected text")
				}
				return
			}

			require.NoError(t, err, "Expected successful parsing, but got an error")
			require.Len(t, modules, 1, "Expected exactly one module to be parsed")
			require.Equal(t, "Test", modules[0].Name)

			if tc.Validate != nil {
				tc.Validate(t, modules[0])
			}
		})
	}
}

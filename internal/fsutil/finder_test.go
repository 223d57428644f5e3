package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/cogent/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"b.cg":          "module B { goal: \"b\" }",
		"a.cg":          "module A { goal: \"a\" }",
		"nested/c.cg":   "module C { goal: \"c\" }",
		"notes.txt":     "ignored",
		"nested/d.cg.x": "ignored",
	})

	files, err := FindFilesByExtension(root, ".cg")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.cg"),
		filepath.Join(root, "b.cg"),
		filepath.Join(root, "nested", "c.cg"),
	}, files)
}

func TestFindFilesByExtensionErrors(t *testing.T) {
	_, err := FindFilesByExtension(t.TempDir(), "")
	assert.Error(t, err)

	_, err = FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".cg")
	assert.Error(t, err)
}

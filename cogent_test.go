package cogent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/cogent/internal/testutil"
	"github.com/specialistvlad/cogent/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalModule(t *testing.T) {
	m, err := NewParser().ParseModule(context.Background(), `
		module Greeter {
			goal: "Say hello"
		}
	`)
	require.NoError(t, err)

	assert.Equal(t, "Greeter", m.Name)
	assert.Equal(t, "Say hello", m.Goal)
	assert.Empty(t, m.Inputs)
	assert.Empty(t, m.Process)
	assert.Nil(t, m.Context)
	assert.Nil(t, m.Feedback)
	assert.Equal(t, "<string>", m.Range.Filename)
}

func TestParseFullModule(t *testing.T) {
	src := testutil.Unindent(`
		@version("2")
		module Analyzer {
			import TextUtils
			type Score = Float
			enum Level { Low, Medium, High }

			goal: "Analyze the text"
			inputs: [text: String, @optional level: Level, scores: List<Score>]
			context: "Texts come from support tickets"
			process: [
				"Read the text",
				for word in words: ["Score the word"],
				while "budget left": ["Refine"],
				try ["Call the classifier"] catch failure ["Fall back to rules"]
			]
			feedback: "Report the score"
		}
	`)

	m, err := NewParser().ParseModule(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"TextUtils"}, m.Imports)
	assert.Equal(t, model.NewTypeExpr("Float"), m.Types["Score"])
	assert.Equal(t, model.NewEnumType("Level", "Low", "Medium", "High"), m.Types["Level"])

	require.Len(t, m.Inputs, 3)
	assert.Equal(t, "List<Score>", m.Inputs[2].Type.String())
	assert.True(t, m.Inputs[1].Annotations.Has("optional"))

	assert.Equal(t, "Texts come from support tickets", *m.Context)
	assert.Equal(t, "Report the score", *m.Feedback)

	kinds := []model.StepKind{}
	for _, s := range m.Process {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []model.StepKind{model.StepPlain, model.StepFor, model.StepWhile, model.StepTry}, kinds)
	assert.Equal(t, []string{"2"}, m.Annotations["version"].Args)
}

func TestParseMultipleModules(t *testing.T) {
	modules, err := NewParser().ParseString(context.Background(), `
		module First { goal: "First goal" inputs: [] process: ["Step1"] }
		module Second { goal: "Second goal" inputs: [x: Int] process: ["Step2"] }
	`)
	require.NoError(t, err)

	require.Len(t, modules, 2)
	assert.Equal(t, "First", modules[0].Name)
	assert.Equal(t, "Second", modules[1].Name)

	_, err = NewParser().ParseModule(context.Background(), `module A { goal: "a" } module B { goal: "b" }`)
	assert.ErrorContains(t, err, "expected exactly one module, found 2")
}

func TestParseSyntaxErrors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		summary string
	}{
		{name: "missing goal", src: `module Example { inputs: [] process: ["Step"] }`, summary: "Missing goal clause"},
		{name: "unterminated string", src: `module A { goal: "oops }`, summary: "Invalid token"},
		{name: "empty source", src: "", summary: "Missing module"},
		{name: "unknown clause", src: `module A { goal: "g" steps: [] }`, summary: "Unexpected token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().ParseString(context.Background(), tc.src)
			require.Error(t, err)

			assert.True(t, errors.Is(err, ErrSyntax))
			assert.False(t, errors.Is(err, ErrStructural))

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, "<string>", serr.Filename)
			require.NotEmpty(t, serr.Diagnostics)
			assert.Equal(t, tc.summary, serr.Diagnostics[0].Summary)
			assert.Contains(t, serr.Error(), tc.summary)
		})
	}
}

func TestSyntaxErrorReport(t *testing.T) {
	_, err := NewParser().ParseString(context.Background(), `module Example { process: ["Step"] }`)

	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))

	report := serr.Report()
	assert.Contains(t, report, "Error: Missing goal clause")
	assert.Contains(t, report, "on <string> line 1")
}

func TestParseWithLogger(t *testing.T) {
	logger, logs := testutil.NewTestLogger()

	_, err := NewParser(WithLogger(logger)).ParseString(context.Background(), `module A { goal: "g" }`)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "Assembled module.")
	assert.Contains(t, out, "module=A")
	assert.Contains(t, out, "file=<string>")
}

func TestParseFileAndLoadDir(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"b.cg": `
			module Beta { goal: "b" }
		`,
		"a.cg": `
			module Alpha { goal: "a" }
			module AlphaTwo { goal: "a2" }
		`,
		"sub/c.cg": `
			module Gamma { goal: "c" }
		`,
		"README.md": "not a module",
	})

	p := NewParser()

	modules, err := p.ParseFile(context.Background(), filepath.Join(root, "a.cg"))
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, filepath.Join(root, "a.cg"), modules[0].Range.Filename)

	modules, err = p.LoadDir(context.Background(), root)
	require.NoError(t, err)
	names := []string{}
	for _, m := range modules {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Alpha", "AlphaTwo", "Beta", "Gamma"}, names)
}

func TestLoadDirStopsAtFirstError(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a.cg": `module Good { goal: "g" }`,
		"b.cg": `module Bad { }`,
	})

	_, err := NewParser().LoadDir(context.Background(), root)
	require.ErrorIs(t, err, ErrSyntax)

	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, filepath.Join(root, "b.cg"), serr.Filename)
}

func TestLoadDirHonorsContext(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"a.cg": `module A { goal: "g" }`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser().LoadDir(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFileMissing(t *testing.T) {
	_, err := NewParser().ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.cg"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSyntax))
	assert.False(t, errors.Is(err, ErrStructural))
	assert.Contains(t, err.Error(), "nope.cg")
}

func TestConfigDrivesParser(t *testing.T) {
	t.Setenv("COGENT_SOURCE_EXTENSION", ".cogent")
	t.Setenv("COGENT_TRANSFORM_LENIENT", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.Transform.Lenient)

	root := testutil.WriteFiles(t, map[string]string{
		"x.cogent": `module X { goal: "x" }`,
		"y.cg":     `module Y { goal: "y" }`,
	})

	modules, err := NewParser(WithConfig(cfg), WithLogger(testLogger())).LoadDir(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "X", modules[0].Name)
}

func TestModuleJSONSnapshot(t *testing.T) {
	m, err := NewParser().ParseModule(context.Background(), `
		module Snap {
			goal: "g"
			inputs: [n: Int]
			process: ["a", try ["b"]]
		}
	`)
	require.NoError(t, err)

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Snap", decoded["name"])
	assert.Equal(t, "g", decoded["goal"])
	assert.Nil(t, decoded["context"])
	assert.True(t, strings.Contains(string(raw), `"kind":"try"`))
}

func testLogger() *slog.Logger {
	logger, _ := testutil.NewTestLogger()
	return logger
}

package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "veil.dev/pkg/veil/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func source(path string) m.Source {
	return m.Source{Origin: &m.File{FullPath: m.Path("/abs/" + path), ShortPath: m.Path(path)}}
}

func TestSimpleUI_DisplayAnonymized(t *testing.T) {
	ui, out := newTestSimpleUI()

	err := ui.DisplayAnonymized(context.Background(), m.Output{
		Source: source("Main.java"),
		Result: m.Result{Text: "int var1 = 1;"},
	})

	require.NoError(t, err)
	assert.Equal(t, "int var1 = 1;", out.String())
}

func TestSimpleUI_DisplaySaved(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplaySaved(context.Background(), []m.Output{{}, {}}, "out")

	assert.Equal(t, "Anonymized 2 file(s) -> out\n", out.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestSimpleUI()

	outputs := []m.Output{
		{
			Source: source("src/Main.java"),
			Result: m.Result{Profile: "java", Stats: m.Stats{Identifiers: 4, Literals: 2, Comments: 1}},
		},
		{
			Source: source("app.py"),
			Result: m.Result{Profile: "python", Stats: m.Stats{Identifiers: 3, Literals: 0, Comments: 2}},
		},
		{
			Source: source("empty.rs"),
			Err:    errors.New("source is empty"),
		},
	}

	err := ui.DisplaySummary(context.Background(), outputs)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "IDENTIFIERS")
	assert.Contains(t, output, "src/Main.java")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "TOTAL FILES 3")
	assert.Contains(t, output, "error: empty.rs: source is empty")
}

func TestSimpleUI_DisplayLanguages(t *testing.T) {
	ui, out := newTestSimpleUI()

	java := m.NewProfile("java", []string{"java"}, m.CommentSyntax{LinePrefix: "//", BlockStart: "/*", BlockEnd: "*/"}, []string{"class", "int"})
	fallback := m.NewProfile("default", nil, m.CommentSyntax{LinePrefix: "//"}, []string{"if"})

	err := ui.DisplayLanguages(context.Background(), []m.Profile{java}, fallback)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "LANGUAGE")
	assert.Contains(t, output, ".java")
	assert.Contains(t, output, "// /* */")
	assert.Contains(t, output, "(any other)")
}

func TestSimpleUI_DisplayView(t *testing.T) {
	view := m.View{
		Output: m.Output{
			Source: source("Main.java"),
			Result: m.Result{Text: "int var1 = 1;\nint var2 = 2;\n", Profile: "java"},
		},
		Original: "int a = 1;\nint b = 2;\n",
	}

	t.Run("text", func(t *testing.T) {
		ui, out := newTestSimpleUI()

		require.NoError(t, ui.DisplayView(context.Background(), view))
		assert.Equal(t, view.Result.Text, out.String())
	})

	t.Run("diff", func(t *testing.T) {
		ui, out := newTestSimpleUI()
		view.Diff = true

		require.NoError(t, ui.DisplayView(context.Background(), view))

		output := out.String()
		assert.Contains(t, output, "--- Main.java")
		assert.Contains(t, output, "+++ Main.java (anonymized)")
		assert.Contains(t, output, "-int a = 1;")
		assert.Contains(t, output, "+int var1 = 1;")
	})
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayAnonymized(ctx, m.Output{Result: m.Result{Text: "x"}})
	assert.ErrorIs(t, err, context.Canceled)

	ui.DisplaySaved(ctx, nil, "out")
	assert.Empty(t, out.String())
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreducer/internal/input"
)

// run executes the CLI with an isolated HOME so no real config file is read.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"ROWREDUCER_PLACES", "ROWREDUCER_STEPS", "ROWREDUCER_COLOR",
		"ROWREDUCER_PIVOT_COLOR", "ROWREDUCER_LOG_LEVEL", "ROWREDUCER_WORKERS"} {
		t.Setenv(k, "")
	}

	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRREFFromArgs(t *testing.T) {
	out, _, err := run(t, "", "rref", "0,2,4", "1,1,3")
	require.NoError(t, err)
	require.Contains(t, out, "Row reducing matrix to Reduced Row Echelon Form:")
	require.Contains(t, out, "Step 1: Interchange R1 and R2 (pivot in column 1)")
	require.True(t, strings.HasSuffix(out,
		"Matrix in Reduced Row Echelon Form:\n┌─┬─┬─┐\n│1│0│1│\n├─┼─┼─┤\n│0│1│2│\n└─┴─┴─┘\n"))
}

func TestREFFromStdinWithoutSteps(t *testing.T) {
	out, _, err := run(t, "1,2\n2,4\n\n", "ref", "--steps=false")
	require.NoError(t, err)
	require.NotContains(t, out, "Step 1")
	require.Contains(t, out, "│0│0│")
}

func TestReduceRejectsJaggedRows(t *testing.T) {
	_, _, err := run(t, "", "ref", "1,2", "3")
	require.ErrorIs(t, err, input.ErrNotEnoughColumns)
}

func TestInvalidConfigFails(t *testing.T) {
	_, _, err := run(t, "", "ref", "--places", "20", "1")
	require.ErrorContains(t, err, "places")
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROWREDUCER_PLACES", "2")

	var out bytes.Buffer
	root := newRootCmd(strings.NewReader(""), &out, &bytes.Buffer{})
	root.SetArgs([]string{"ref", "--steps=false", "3,1"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "│1   │0.33│")
}

func TestREPLSession(t *testing.T) {
	session := "help\nbogus\nREF\n1,2\n3\n\nRef\n0,1\n\nrref\n2,4\n\nexit\nref\n"
	out, _, err := run(t, session, "repl")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "Row Reducer\n~~~ Help ~~~\n"))
	require.Contains(t, out, `Unknown command: "bogus"`)
	require.Contains(t, out, "Error: row 2: must have 2 columns")
	require.Contains(t, out, "Row reducing matrix to Row Echelon Form:\n┌─┬─┐\n│0│1│\n└─┴─┘\n")
	require.Contains(t, out, "Step 1: Scale R1 by 0.5 to make the pivot in column 1 equal 1")
	require.Contains(t, out, "Matrix in Reduced Row Echelon Form:\n┌─┬─┐\n│1│2│\n└─┴─┘\n")
	require.True(t, strings.HasSuffix(out, ">Quitting...\n"), "input after exit is ignored")
}

func TestREPLStopsAtEOF(t *testing.T) {
	out, _, err := run(t, "rref\n1\n")
	require.NoError(t, err)
	require.Contains(t, out, "Matrix in Reduced Row Echelon Form:")
	require.True(t, strings.HasSuffix(out, ">\n"))
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[matrix]]
name = "singular"
form = "ref"
rows = [[1, 2], [2, 4]]

[[matrix]]
name = "swap"
form = "rref"
rows = [[0, 2, 4], [1, 1, 3]]
`), 0o600))

	out, _, err := run(t, "", "batch", path, "--workers", "2", "--color")
	require.NoError(t, err)
	require.Less(t, strings.Index(out, "== singular =="), strings.Index(out, "== swap =="))
	require.Contains(t, out, "\x1b[38;2;")
}

func TestBatchCommandMissingFile(t *testing.T) {
	_, _, err := run(t, "", "batch", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestNegativeRowsAfterDoubleDash(t *testing.T) {
	out, _, err := run(t, "", "rref", "--steps=false", "--", "2,1,-1", "-3,-1,2", "-2,1,2")
	require.NoError(t, err)
	require.Contains(t, out, "Matrix in Reduced Row Echelon Form:\n┌─┬─┬─┐\n│1│0│0│\n├─┼─┼─┤\n│0│1│0│\n├─┼─┼─┤\n│0│0│1│\n└─┴─┴─┘\n")
}

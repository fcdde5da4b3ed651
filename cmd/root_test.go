package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jsanalyzer/internal/config"
	"jsanalyzer/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPrefix+"FILE", "")
	t.Setenv(config.EnvPrefix+"LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_Report(t *testing.T) {
	path := writeFile(t, "sample.js", `
function greet(name) {
    const message = "Hello, " + name + "!";
    console.log(message);
}

let counter = 0;
const PI = 3.14159;

import { utils } from './utils.js';
`)

	stdout, stderr, err := runRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "JavaScript AST Analysis:\n"+
		"========================\n"+
		"Functions: 1\n"+
		"Variables: 2\n"+
		"Imports: 1\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_ShortFlag(t *testing.T) {
	path := writeFile(t, "short.mjs", "import a from './a.js';\n")

	stdout, _, err := runRoot(t, "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imports: 1\n")
}

func TestRoot_MissingFlag(t *testing.T) {
	stdout, _, err := runRoot(t)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrNoFile))
	assert.Empty(t, stdout)
}

func TestRoot_UnreadableFile(t *testing.T) {
	stdout, _, err := runRoot(t, "-f", filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrRead))
	assert.Empty(t, stdout)
}

func TestRoot_ParseErrorPrintsNoReport(t *testing.T) {
	path := writeFile(t, "bad.js", "function (\n")

	stdout, stderr, err := runRoot(t, "-f", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrParse))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "bad.js")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, _, err := runRoot(t, "extra.js")
	require.Error(t, err)
}

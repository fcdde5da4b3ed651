package parser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeSource(t, "app.js", "import x from './x.js';\nexport const y = x;\n")

	var diag bytes.Buffer
	module, err := NewLoader(&diag, nil).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, module.Path)
	assert.Len(t, module.Body, 2)
	assert.Empty(t, diag.String())
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")

	var diag bytes.Buffer
	module, err := NewLoader(&diag, nil).LoadFile(path)
	require.Error(t, err)
	assert.Nil(t, module)
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrParse))
	assert.Empty(t, diag.String(), "read failures carry no parser diagnostic")
}

func TestLoader_ParseFailureWritesDiagnostic(t *testing.T) {
	path := writeSource(t, "broken.js", "let ok = 1;\nlet = ;\n")

	var diag bytes.Buffer
	module, err := NewLoader(&diag, nil).LoadFile(path)
	require.Error(t, err)
	assert.Nil(t, module)
	assert.True(t, errors.Is(err, ErrParse))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, perr.Diagnostic, diag.String())
	assert.Contains(t, diag.String(), "broken.js")
}

func TestLoader_UnknownExtensionStillParses(t *testing.T) {
	path := writeSource(t, "script.txt", "function f() {}\n")

	module, err := NewLoader(&bytes.Buffer{}, nil).LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, module.Body, 1)
}

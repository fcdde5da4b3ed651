package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jsanalyzer/internal/ast"
	"jsanalyzer/internal/logging"
)

// Loader reads a source file and parses it as a JavaScript module.
type Loader struct {
	parser      ModuleParser
	diagnostics io.Writer
	logger      *slog.Logger
}

// NewLoader creates a loader that writes parse diagnostics to diagnostics
// (os.Stderr when nil).
func NewLoader(diagnostics io.Writer, logger *slog.Logger) *Loader {
	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{
		parser:      NewJavaScriptParser(),
		diagnostics: diagnostics,
		logger:      logger,
	}
}

// LoadFile reads path and parses it. Failures wrap ErrRead or ErrParse.
func (l *Loader) LoadFile(path string) (*ast.Module, error) {
	if !IsSupportedFile(path) {
		l.logger.Warn("file extension is not a known JavaScript extension, parsing anyway",
			"path", path, "supported", SupportedExtensions())
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	l.logger.Debug("read source", "path", path, "bytes", len(code))

	return l.Parse(path, code)
}

// Parse parses code already in memory. path is used only to label
// diagnostics.
func (l *Loader) Parse(path string, code []byte) (*ast.Module, error) {
	module, err := l.parser.ParseModule(path, code)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(l.diagnostics, perr.Diagnostic)
			l.logger.Debug("parse failed", "path", path, "line", perr.Line, "column", perr.Column)
		}
		return nil, err
	}

	l.logger.Debug("parsed module", "path", path, "items", len(module.Body))
	return module, nil
}

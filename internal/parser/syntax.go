package parser

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// checkModuleSyntax runs code through esbuild as an ES module. tree-sitter
// recovers from most errors and accepts script-only constructs, so this is
// what decides whether the source is a valid module at all.
func checkModuleSyntax(filePath string, code []byte) *ParseError {
	result := api.Transform(string(code), api.TransformOptions{
		Loader:     api.LoaderJS,
		Format:     api.FormatESModule,
		Target:     api.ESNext,
		Sourcefile: filePath,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	first := result.Errors[0]
	perr := &ParseError{
		Path:       filePath,
		Line:       1,
		Column:     1,
		Message:    first.Text,
		Diagnostic: formatDiagnostic(result.Errors[:1]),
	}
	if loc := first.Location; loc != nil {
		perr.Line = loc.Line
		perr.Column = loc.Column + 1
	}
	return perr
}

// newTreeError builds a ParseError for a syntax error esbuild did not
// report. line and column are 0-indexed, as tree-sitter reports them.
func newTreeError(filePath string, code []byte, line, column, length int, message string) *ParseError {
	msg := api.Message{
		Text: message,
		Location: &api.Location{
			File:     filePath,
			Line:     line + 1,
			Column:   column,
			Length:   length,
			LineText: sourceLine(code, line),
		},
	}
	return &ParseError{
		Path:       filePath,
		Line:       line + 1,
		Column:     column + 1,
		Message:    message,
		Diagnostic: formatDiagnostic([]api.Message{msg}),
	}
}

func formatDiagnostic(msgs []api.Message) string {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{
		Kind:  api.ErrorMessage,
		Color: false,
	})
	return strings.Join(formatted, "")
}

func sourceLine(code []byte, line int) string {
	lines := strings.Split(string(code), "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line], "\r")
}

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrRead is wrapped by every failure to read the source file.
	ErrRead = errors.New("failed to read source file")
	// ErrParse is wrapped by every syntax failure.
	ErrParse = errors.New("failed to parse JavaScript")
)

// ParseError describes the first syntax error found in a source file.
// Line and Column are 1-indexed.
type ParseError struct {
	Path       string
	Line       int
	Column     int
	Message    string
	Diagnostic string // rendered report with the offending source line
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s:%d:%d: %s", ErrParse, e.Path, e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

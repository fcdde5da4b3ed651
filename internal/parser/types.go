package parser

import (
	"path/filepath"
	"strings"

	"jsanalyzer/internal/ast"
)

// ModuleParser turns source text into a module-level tree.
type ModuleParser interface {
	// ParseModule parses code as an ECMAScript module. filePath only
	// identifies the source in diagnostics.
	ParseModule(filePath string, code []byte) (*ast.Module, error)

	// Language returns the language name
	Language() string
}

// Language represents supported programming languages
type Language string

const (
	LanguageJavaScript Language = "javascript"
)

// DetectLanguage detects the programming language based on file extension
func DetectLanguage(filePath string) Language {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".js", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return ""
	}
}

// SupportedExtensions returns all supported file extensions
func SupportedExtensions() []string {
	return []string{".js", ".mjs", ".cjs"}
}

// IsSupportedFile checks if a file is supported based on its extension
func IsSupportedFile(filePath string) bool {
	return DetectLanguage(filePath) != ""
}

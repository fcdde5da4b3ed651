package analyzer

import (
	"fmt"
	"io"
)

const (
	reportHeader = "JavaScript AST Analysis:"
	reportRule   = "========================"
)

// WriteReport prints counts in the fixed plain-text layout.
func WriteReport(w io.Writer, counts Counts) error {
	_, err := fmt.Fprintf(w, "%s\n%s\nFunctions: %d\nVariables: %d\nImports: %d\n",
		reportHeader, reportRule, counts.Functions, counts.Variables, counts.Imports)
	return err
}

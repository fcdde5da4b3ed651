// Package analyzer counts the top-level declarations of a parsed module.
package analyzer

import (
	"jsanalyzer/internal/ast"
)

// Category is the bucket a top-level item falls into.
type Category int

const (
	CategoryIgnored Category = iota
	CategoryFunction
	CategoryVariable
	CategoryImport
)

func (c Category) String() string {
	switch c {
	case CategoryFunction:
		return "function"
	case CategoryVariable:
		return "variable"
	case CategoryImport:
		return "import"
	default:
		return "ignored"
	}
}

// Counts holds the tallies for one module.
type Counts struct {
	Functions int
	Variables int
	Imports   int
}

// CountTopLevel tallies the module's direct children. Declarations nested
// inside functions, blocks or classes are never part of Body and so are
// never counted.
func CountTopLevel(module *ast.Module) Counts {
	var counts Counts
	if module == nil {
		return counts
	}
	for _, item := range module.Body {
		counts.add(Classify(item))
	}
	return counts
}

func (c *Counts) add(cat Category) {
	switch cat {
	case CategoryFunction:
		c.Functions++
	case CategoryVariable:
		c.Variables++
	case CategoryImport:
		c.Imports++
	case CategoryIgnored:
	}
}

// Classify decides which bucket item belongs to.
func Classify(item ast.ModuleItem) Category {
	switch it := item.(type) {
	case *ast.StmtItem:
		return classifyStmt(it.Stmt)
	case *ast.ModuleDeclItem:
		return classifyModuleDecl(it.Decl)
	default:
		return CategoryIgnored
	}
}

func classifyStmt(stmt ast.Stmt) Category {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		return classifyDecl(s.Decl)
	case *ast.ExprStmt, *ast.OtherStmt:
		return CategoryIgnored
	default:
		return CategoryIgnored
	}
}

func classifyDecl(decl ast.Decl) Category {
	switch decl.(type) {
	case *ast.FnDecl:
		return CategoryFunction
	case *ast.VarDecl:
		return CategoryVariable
	case *ast.ClassDecl, *ast.UsingDecl:
		return CategoryIgnored
	default:
		return CategoryIgnored
	}
}

// Exports are ignored even when they wrap a function or variable.
func classifyModuleDecl(decl ast.ModuleDecl) Category {
	switch decl.(type) {
	case *ast.ImportDecl:
		return CategoryImport
	case *ast.ExportDecl, *ast.ExportDefault, *ast.ExportNamed, *ast.ExportAll:
		return CategoryIgnored
	default:
		return CategoryIgnored
	}
}

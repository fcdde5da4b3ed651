package parser

import (
	"fmt"
	"strings"

	"jsanalyzer/internal/ast"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// JavaScriptParser implements ModuleParser for JavaScript modules
type JavaScriptParser struct {
	lang *sitter.Language
}

// NewJavaScriptParser creates a new JavaScript parser
func NewJavaScriptParser() *JavaScriptParser {
	return &JavaScriptParser{
		lang: sitter.NewLanguage(tree_sitter_javascript.Language()),
	}
}

// Language returns the language name
func (p *JavaScriptParser) Language() string {
	return string(LanguageJavaScript)
}

// ParseModule validates code as an ES module and returns its top-level
// items. Syntax errors are returned as *ParseError; no partial module is
// returned alongside them.
func (p *JavaScriptParser) ParseModule(filePath string, code []byte) (*ast.Module, error) {
	if perr := checkModuleSyntax(filePath, code); perr != nil {
		return nil, perr
	}
	if len(code) == 0 {
		return &ast.Module{Path: filePath}, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(p.lang); err != nil {
		return nil, fmt.Errorf("failed to load JavaScript grammar: %w", err)
	}

	tree := parser.Parse(code, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s: parser returned no tree", ErrParse, filePath)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, treeError(root, code, filePath)
	}

	return &ast.Module{
		Path: filePath,
		Body: p.lowerProgram(root, code),
	}, nil
}

// lowerProgram converts the direct children of the program node. Nothing
// below depth one becomes an item.
func (p *JavaScriptParser) lowerProgram(root *sitter.Node, code []byte) []ast.ModuleItem {
	count := root.NamedChildCount()
	items := make([]ast.ModuleItem, 0, count)
	for i := uint(0); i < count; i++ {
		child := root.NamedChild(i)
		if child == nil || isTrivia(child) {
			continue
		}
		items = append(items, p.lowerItem(child, code))
	}
	return items
}

func (p *JavaScriptParser) lowerItem(node *sitter.Node, code []byte) ast.ModuleItem {
	switch node.Kind() {
	case "import_statement":
		return &ast.ModuleDeclItem{Decl: &ast.ImportDecl{
			Source: stringValue(node.ChildByFieldName("source"), code),
			Loc:    spanOf(node),
		}}
	case "export_statement":
		return &ast.ModuleDeclItem{Decl: p.lowerExport(node, code)}
	case "expression_statement":
		return &ast.StmtItem{Stmt: &ast.ExprStmt{Loc: spanOf(node)}}
	}

	if decl := p.lowerDecl(node, code); decl != nil {
		return &ast.StmtItem{Stmt: &ast.DeclStmt{Decl: decl}}
	}
	return &ast.StmtItem{Stmt: &ast.OtherStmt{Kind: node.Kind(), Loc: spanOf(node)}}
}

// lowerDecl returns nil when node is not a declaration.
func (p *JavaScriptParser) lowerDecl(node *sitter.Node, code []byte) ast.Decl {
	switch node.Kind() {
	case "function_declaration", "generator_function_declaration":
		return &ast.FnDecl{
			Name:      fieldText(node, "name", code),
			Async:     hasToken(node, "async"),
			Generator: node.Kind() == "generator_function_declaration",
			Loc:       spanOf(node),
		}
	case "lexical_declaration":
		return &ast.VarDecl{
			Kind:  ast.VarKind(fieldText(node, "kind", code)),
			Names: declaratorNames(node, code),
			Loc:   spanOf(node),
		}
	case "variable_declaration":
		return &ast.VarDecl{
			Kind:  ast.VarKindVar,
			Names: declaratorNames(node, code),
			Loc:   spanOf(node),
		}
	case "class_declaration":
		return &ast.ClassDecl{
			Name: fieldText(node, "name", code),
			Loc:  spanOf(node),
		}
	case "using_declaration":
		return &ast.UsingDecl{Loc: spanOf(node)}
	}
	return nil
}

func (p *JavaScriptParser) lowerExport(node *sitter.Node, code []byte) ast.ModuleDecl {
	loc := spanOf(node)
	source := stringValue(node.ChildByFieldName("source"), code)

	if hasToken(node, "default") {
		return &ast.ExportDefault{Loc: loc}
	}
	if declNode := node.ChildByFieldName("declaration"); declNode != nil {
		return &ast.ExportDecl{Decl: p.lowerDecl(declNode, code), Loc: loc}
	}
	if hasToken(node, "*") || hasNamedChild(node, "namespace_export") {
		return &ast.ExportAll{Source: source, Loc: loc}
	}
	return &ast.ExportNamed{Source: source, Loc: loc}
}

func isTrivia(node *sitter.Node) bool {
	switch node.Kind() {
	case "comment", "hash_bang_line", "html_comment":
		return true
	}
	return node.IsExtra()
}

func spanOf(node *sitter.Node) ast.Span {
	start := node.StartPosition()
	end := node.EndPosition()
	return ast.Span{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

func fieldText(node *sitter.Node, field string, code []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Utf8Text(code)
}

func stringValue(node *sitter.Node, code []byte) string {
	if node == nil {
		return ""
	}
	return strings.Trim(node.Utf8Text(code), "\"'`")
}

// hasToken reports whether node has a direct anonymous child of the given kind.
func hasToken(node *sitter.Node, kind string) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == kind {
			return true
		}
	}
	return false
}

func hasNamedChild(node *sitter.Node, kind string) bool {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Kind() == kind {
			return true
		}
	}
	return false
}

func declaratorNames(node *sitter.Node, code []byte) []string {
	var names []string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() != "variable_declarator" {
			continue
		}
		if name := fieldText(child, "name", code); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// treeError locates the first ERROR or MISSING node below root.
func treeError(root *sitter.Node, code []byte, filePath string) *ParseError {
	bad := firstErrorNode(root)
	if bad == nil {
		return newTreeError(filePath, code, 0, 0, 0, "syntax error")
	}

	pos := bad.StartPosition()
	length := int(bad.EndByte() - bad.StartByte())
	var message string
	if bad.IsMissing() {
		message = fmt.Sprintf("Expected %q", bad.Kind())
		length = 0
	} else {
		text := strings.SplitN(bad.Utf8Text(code), "\n", 2)[0]
		if text == "" {
			message = "Unexpected end of file"
		} else {
			message = fmt.Sprintf("Unexpected %q", text)
		}
		if nl := strings.IndexByte(bad.Utf8Text(code), '\n'); nl >= 0 {
			length = nl
		}
	}
	return newTreeError(filePath, code, int(pos.Row), int(pos.Column), length, message)
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}

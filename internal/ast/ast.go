// Package ast holds the top-level view of a parsed JavaScript module.
//
// Only the module body is modelled. Each item is a two-level variant: a
// statement (which may wrap a declaration) or a module declaration
// (import/export). Nested code is kept as spans, never as nodes.
package ast

// Position is a 1-indexed line/column pair.
type Position struct {
	Line   int
	Column int
}

// Span covers a node from Start up to End.
type Span struct {
	Start Position
	End   Position
}

// Module is a parsed source file. It is not modified after parsing.
type Module struct {
	Path string
	Body []ModuleItem
}

// ModuleItem is either a *StmtItem or a *ModuleDeclItem.
type ModuleItem interface {
	Span() Span
	moduleItem()
}

// StmtItem is an ordinary statement at module level.
type StmtItem struct {
	Stmt Stmt
}

// ModuleDeclItem is an import or export at module level.
type ModuleDeclItem struct {
	Decl ModuleDecl
}

func (i *StmtItem) Span() Span       { return i.Stmt.Span() }
func (i *ModuleDeclItem) Span() Span { return i.Decl.Span() }

func (*StmtItem) moduleItem()       {}
func (*ModuleDeclItem) moduleItem() {}

// Stmt is one of *DeclStmt, *ExprStmt or *OtherStmt.
type Stmt interface {
	Span() Span
	stmt()
}

// DeclStmt is a statement that introduces a binding.
type DeclStmt struct {
	Decl Decl
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	Loc Span
}

// OtherStmt is any remaining statement (if, for, try, blocks, ...).
// Kind is the grammar's node name.
type OtherStmt struct {
	Kind string
	Loc  Span
}

func (s *DeclStmt) Span() Span  { return s.Decl.Span() }
func (s *ExprStmt) Span() Span  { return s.Loc }
func (s *OtherStmt) Span() Span { return s.Loc }

func (*DeclStmt) stmt()  {}
func (*ExprStmt) stmt()  {}
func (*OtherStmt) stmt() {}

// Decl is one of *FnDecl, *VarDecl, *ClassDecl or *UsingDecl.
type Decl interface {
	Span() Span
	decl()
}

// FnDecl is a function declaration, including async and generator forms.
type FnDecl struct {
	Name      string
	Async     bool
	Generator bool
	Loc       Span
}

// VarKind distinguishes var, let and const.
type VarKind string

const (
	VarKindVar   VarKind = "var"
	VarKindLet   VarKind = "let"
	VarKindConst VarKind = "const"
)

// VarDecl is a variable declaration. A single declaration may bind
// several names (let a, b).
type VarDecl struct {
	Kind  VarKind
	Names []string
	Loc   Span
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	Name string
	Loc  Span
}

// UsingDecl is an explicit resource management declaration (using / await using).
type UsingDecl struct {
	Loc Span
}

func (d *FnDecl) Span() Span    { return d.Loc }
func (d *VarDecl) Span() Span   { return d.Loc }
func (d *ClassDecl) Span() Span { return d.Loc }
func (d *UsingDecl) Span() Span { return d.Loc }

func (*FnDecl) decl()    {}
func (*VarDecl) decl()   {}
func (*ClassDecl) decl() {}
func (*UsingDecl) decl() {}

// ModuleDecl is one of *ImportDecl, *ExportDecl, *ExportDefault,
// *ExportNamed or *ExportAll.
type ModuleDecl interface {
	Span() Span
	moduleDecl()
}

// ImportDecl is a static import statement. Source is the module
// specifier without quotes.
type ImportDecl struct {
	Source string
	Loc    Span
}

// ExportDecl exports a declaration (export function f() {}).
type ExportDecl struct {
	Decl Decl
	Loc  Span
}

// ExportDefault is export default <expr | declaration>.
type ExportDefault struct {
	Loc Span
}

// ExportNamed is export { a, b as c } with an optional from clause.
type ExportNamed struct {
	Source string
	Loc    Span
}

// ExportAll is export * [as ns] from "mod".
type ExportAll struct {
	Source string
	Loc    Span
}

func (d *ImportDecl) Span() Span    { return d.Loc }
func (d *ExportDecl) Span() Span    { return d.Loc }
func (d *ExportDefault) Span() Span { return d.Loc }
func (d *ExportNamed) Span() Span   { return d.Loc }
func (d *ExportAll) Span() Span     { return d.Loc }

func (*ImportDecl) moduleDecl()    {}
func (*ExportDecl) moduleDecl()    {}
func (*ExportDefault) moduleDecl() {}
func (*ExportNamed) moduleDecl()   {}
func (*ExportAll) moduleDecl()     {}

package ast

import "github.com/luxlang/luxc/internal/token"

// DeclKind discriminates the Declaration sum type.
type DeclKind int

const (
	DeclVariable DeclKind = iota
	DeclFunction
	DeclType
)

// Decl is implemented by every declaration node.
type Decl interface {
	Node
	DeclKind() DeclKind
	DeclName() string
	DeclToken() token.Token
	DeclType() Type
	SetDeclType(Type)
	IsGlobal() bool
	SetGlobal(bool)
}

type declBase struct {
	Name   string
	Tok    token.Token
	Type_  Type
	Global bool
}

func (d *declBase) Pos() token.Position  { return d.Tok.Pos }
func (d *declBase) DeclName() string     { return d.Name }
func (d *declBase) DeclToken() token.Token { return d.Tok }
func (d *declBase) DeclType() Type       { return d.Type_ }
func (d *declBase) SetDeclType(t Type)   { d.Type_ = t }
func (d *declBase) IsGlobal() bool       { return d.Global }
func (d *declBase) SetGlobal(g bool)     { d.Global = g }

// NewVarDecl creates a variable declaration named after tok with type ty.
func NewVarDecl(tok token.Token, ty Type) *VarDecl {
	return &VarDecl{declBase: declBase{Name: tok.Lexeme, Tok: tok, Type_: ty}}
}

// NewFuncDecl creates a function declaration named after tok, returning ty,
// with params as its argument scope.
func NewFuncDecl(tok token.Token, ty Type, params *Scope, isAsm bool) *FuncDecl {
	return &FuncDecl{declBase: declBase{Name: tok.Lexeme, Tok: tok, Type_: ty}, Params: params, IsAsm: isAsm}
}

// NewTypeDecl creates a typedef named after tok aliasing ty.
func NewTypeDecl(tok token.Token, ty Type) *TypeDecl {
	return &TypeDecl{declBase: declBase{Name: tok.Lexeme, Tok: tok, Type_: ty}}
}

// VarDecl is a variable declaration. Offset is the stack byte offset
// (relative to the function's frame base), assigned once the variable is
// emitted; it is meaningless for a global.
type VarDecl struct {
	declBase
	Offset int
}

func (*VarDecl) DeclKind() DeclKind { return DeclVariable }

// FuncDecl is a function declaration: either a lux-bodied function (Body
// set, AsmBody empty) or an assembly-bodied one (IsAsm true, AsmBody the
// raw text between the braces, Body nil).
type FuncDecl struct {
	declBase
	Params *Scope // argument scope
	Body   *Compound
	IsAsm  bool
	AsmBody string
}

func (*FuncDecl) DeclKind() DeclKind { return DeclFunction }

// ReturnType is DeclType() under the name the rest of the resolver uses for
// readability at call sites.
func (f *FuncDecl) ReturnType() Type { return f.Type_ }

// TypeDecl is a typedef: `name :: type;`.
type TypeDecl struct {
	declBase
}

func (*TypeDecl) DeclKind() DeclKind { return DeclType }

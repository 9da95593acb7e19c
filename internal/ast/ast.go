// Package ast defines the lux abstract syntax tree: expressions,
// statements, types, declarations, and the scope graph the parser builds
// alongside them.
//
// Every sum type in this data model (Expression, Statement, Type,
// Declaration) is modeled as a small Go interface plus a closed set of
// concrete struct types, one per variant, switched over exhaustively by
// every visitor (the parser's desugaring, the type resolver, the tree
// printer, the emitter). There is no virtual dispatch: a node never decides
// how it is typed or printed, the visitor does.
package ast

import "github.com/luxlang/luxc/internal/token"

// Node is implemented by every AST node: expressions, statements,
// declarations, and types.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression node. Type is nil until the
// resolver assigns it; after a successful typing pass every expression
// reachable from a function body has a concrete Type.
type Expr interface {
	Node
	exprNode()
	Type() Type
	SetType(Type)
}

// typed is embedded by every concrete Expr to carry its resolved Type.
type typed struct {
	typ Type
}

func (t *typed) Type() Type     { return t.typ }
func (t *typed) SetType(ty Type) { t.typ = ty }

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a compilation: an ordered list of code units, one
// per source file.
type Program struct {
	Units []*CodeUnit
}

// CodeUnit is a single parsed source file: its name, its global scope, and
// the ordered top-level item list (declarations appear in Global.Order;
// TopLevel additionally carries comments and any synthetic initializer
// assignment a global `name : type = expr;` produced, since those aren't
// declarations themselves).
type CodeUnit struct {
	File     string
	Global   *Scope
	TopLevel []Stmt
}

package ast

import "github.com/luxlang/luxc/internal/token"

// ExprStmt is an expression used as a statement (`expr ;`).
type ExprStmt struct {
	Tok  token.Token
	Expr Expr
}

func (*ExprStmt) stmtNode()           {}
func (s *ExprStmt) Pos() token.Position { return s.Tok.Pos }

// Compound is a `{ ... }` block: an ordered statement list plus the scope
// it owns.
type Compound struct {
	Tok   token.Token // the '{' token
	Stmts []Stmt
	Scope *Scope
}

func (*Compound) stmtNode()           {}
func (c *Compound) Pos() token.Position { return c.Tok.Pos }

// CommentStmt preserves a comment token in the statement stream: comments
// are lexed as tokens so the parser can attach them to the tree rather
// than discarding them.
type CommentStmt struct {
	Tok token.Token
}

func (*CommentStmt) stmtNode()           {}
func (c *CommentStmt) Pos() token.Position { return c.Tok.Pos }

// Return is `return expr? ;`. Value is nil for a bare `return;`.
type Return struct {
	Tok   token.Token
	Value Expr
}

func (*Return) stmtNode()           {}
func (r *Return) Pos() token.Position { return r.Tok.Pos }

// Loop covers both `while cond { body }` (Init and Post nil) and the
// desugared `for i in a..b { body }` (Init `i = a`, Condition `i <= b`,
// Post `i = i + 1`).
type Loop struct {
	Tok       token.Token
	Init      Stmt // optional, *ExprStmt
	Condition Expr
	Post      Stmt // optional, *ExprStmt
	Body      *Compound
}

func (*Loop) stmtNode()           {}
func (l *Loop) Pos() token.Position { return l.Tok.Pos }

// Conditional is `if cond { then } (else if ...)* (else { ... })?`. False is
// nil, another *Conditional (an "else if" chain link), or a *Compound (a
// final "else").
type Conditional struct {
	Tok       token.Token
	Condition Expr
	True      *Compound
	False     Stmt
}

func (*Conditional) stmtNode()           {}
func (c *Conditional) Pos() token.Position { return c.Tok.Pos }

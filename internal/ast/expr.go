package ast

import "github.com/luxlang/luxc/internal/token"

// PrimaryKind discriminates Primary.
type PrimaryKind int

const (
	PrimaryNumber PrimaryKind = iota
	PrimaryIdentifier
	PrimaryString
)

// Primary is a NUMBER, IDENTIFIER, or STRING leaf expression.
type Primary struct {
	typed
	Tok  token.Token
	Kind PrimaryKind

	Number uint64 // PrimaryNumber
	Name   string // PrimaryIdentifier
	Decl   Decl   // PrimaryIdentifier: resolved back-reference, weak
	Bytes  string // PrimaryString: the literal bytes, no escape processing
}

func (*Primary) exprNode()          {}
func (p *Primary) Pos() token.Position { return p.Tok.Pos }

// UnaryKind discriminates Unary.
type UnaryKind int

const (
	UnaryDeref UnaryKind = iota
	UnaryAddressOf
)

// Unary is a prefix `@` (dereference) or `*` (address-of) expression.
type Unary struct {
	typed
	Tok     token.Token
	Kind    UnaryKind
	Operand Expr
}

func (*Unary) exprNode()           {}
func (u *Unary) Pos() token.Position { return u.Tok.Pos }

// BinaryKind discriminates Binary.
type BinaryKind int

const (
	BinaryAdd BinaryKind = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryEq
	BinaryNe
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
	BinaryAssign
)

// Binary is a two-operand expression, including assignment.
type Binary struct {
	typed
	Tok   token.Token
	Kind  BinaryKind
	Left  Expr
	Right Expr
}

func (*Binary) exprNode()           {}
func (b *Binary) Pos() token.Position { return b.Tok.Pos }

// Call is a function-call expression: `callee(args...)`.
type Call struct {
	typed
	Tok    token.Token // the '(' token
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode()           {}
func (c *Call) Pos() token.Position { return c.Tok.Pos }

// Dot is a `base.member` field-access expression. Offset is filled in by
// the type resolver once the member is looked up.
type Dot struct {
	typed
	Tok    token.Token // the '.' token
	Base   Expr
	Member string
	Offset int
}

func (*Dot) exprNode()           {}
func (d *Dot) Pos() token.Position { return d.Tok.Pos }

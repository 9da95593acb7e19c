package parser

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/token"
)

// precedenceOf returns the binding power of a binary operator token and
// whether k is a binary operator at all: `* /` = 30, `+ -` = 24,
// `< <= > >=` = 20, `== !=` = 19, `=` = 1.
func precedenceOf(k token.Kind) (int, bool) {
	switch k {
	case token.STAR, token.SLASH:
		return 30, true
	case token.PLUS, token.MINUS:
		return 24, true
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return 20, true
	case token.EQUAL_EQUAL, token.NOT_EQUAL:
		return 19, true
	case token.ASSIGN:
		return 1, true
	default:
		return 0, false
	}
}

func binaryKindOf(k token.Kind) ast.BinaryKind {
	switch k {
	case token.PLUS:
		return ast.BinaryAdd
	case token.MINUS:
		return ast.BinarySub
	case token.STAR:
		return ast.BinaryMul
	case token.SLASH:
		return ast.BinaryDiv
	case token.EQUAL_EQUAL:
		return ast.BinaryEq
	case token.NOT_EQUAL:
		return ast.BinaryNe
	case token.LESS:
		return ast.BinaryLt
	case token.LESS_EQUAL:
		return ast.BinaryLe
	case token.GREATER:
		return ast.BinaryGt
	case token.GREATER_EQUAL:
		return ast.BinaryGe
	case token.ASSIGN:
		return ast.BinaryAssign
	default:
		panic("parser: binaryKindOf called on a non-operator token")
	}
}

// parseExpression is the precedence-climbing entry point.
// It parses a unary/primary chain, then repeatedly consumes a binary
// operator whose precedence exceeds priority, recursing with that
// operator's own precedence as the new floor. Left-associativity falls out
// because an operator of equal precedence to the one just consumed does
// not satisfy "exceeds" in the recursive call, so it's picked up by this
// loop instead, building a left-leaning chain.
func (p *Parser) parseExpression(priority int) ast.Expr {
	left := p.parseUnary()

	for {
		opTok := p.cur()
		prec, isBinOp := precedenceOf(opTok.Kind)
		if !isBinOp || prec <= priority {
			return left
		}
		p.advance()
		right := p.parseExpression(prec)
		left = &ast.Binary{Tok: opTok, Kind: binaryKindOf(opTok.Kind), Left: left, Right: right}
	}
}

// parseUnary handles the two prefix operators and otherwise delegates to a
// primary followed by a suffix chain.
func (p *Parser) parseUnary() ast.Expr {
	cur := p.cur()
	switch cur.Kind {
	case token.STAR:
		p.advance()
		return &ast.Unary{Tok: cur, Kind: ast.UnaryAddressOf, Operand: p.parseUnary()}
	case token.AT:
		p.advance()
		return &ast.Unary{Tok: cur, Kind: ast.UnaryDeref, Operand: p.parseUnary()}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression(-1)
		p.skip(token.RPAREN)
		return p.parseSuffix(inner)
	default:
		return p.parseSuffix(p.parsePrimary())
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	cur := p.cur()
	switch cur.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.Primary{Tok: cur, Kind: ast.PrimaryNumber, Number: cur.Number}
	case token.STRING:
		p.advance()
		return &ast.Primary{Tok: cur, Kind: ast.PrimaryString, Bytes: cur.Lexeme}
	case token.IDENTIFIER:
		p.advance()
		return &ast.Primary{Tok: cur, Kind: ast.PrimaryIdentifier, Name: cur.Lexeme}
	default:
		p.sink.Fail(cur, "expected an expression, got %s", cur.Kind)
		panic("unreachable")
	}
}

// parseSuffix consumes a chain of call/index/dot suffixes applied to left.
// `base[index]` is desugared here to `*(base + index)` (a DEREF wrapping a
// PLUS) so the type resolver only ever has to know about pointer
// arithmetic, never array indexing.
func (p *Parser) parseSuffix(left ast.Expr) ast.Expr {
	for {
		switch p.cur().Kind {
		case token.LPAREN:
			tok := p.cur()
			p.advance()
			args := p.parseArgs()
			p.skip(token.RPAREN)
			left = &ast.Call{Tok: tok, Callee: left, Args: args}
		case token.LBRACKET:
			tok := p.cur()
			p.advance()
			index := p.parseExpression(-1)
			p.skip(token.RBRACKET)
			sum := &ast.Binary{Tok: tok, Kind: ast.BinaryAdd, Left: left, Right: index}
			left = &ast.Unary{Tok: tok, Kind: ast.UnaryDeref, Operand: sum}
		case token.DOT:
			tok := p.cur()
			p.advance()
			nameTok := p.cur()
			if nameTok.Kind != token.IDENTIFIER {
				p.sink.Fail(nameTok, "expected a member name after '.', got %s", nameTok.Kind)
			}
			p.advance()
			left = &ast.Dot{Tok: tok, Base: left, Member: nameTok.Lexeme}
		default:
			return left
		}
	}
}

// parseArgs parses a comma-separated, possibly-empty argument list up to
// (but not consuming) the closing ')'.
func (p *Parser) parseArgs() []ast.Expr {
	if p.cur().Kind == token.RPAREN {
		return nil
	}
	args := []ast.Expr{p.parseExpression(-1)}
	for p.cur().Kind == token.COMMA {
		p.advance()
		args = append(args, p.parseExpression(-1))
	}
	return args
}

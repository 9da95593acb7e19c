package parser

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/token"
)

// parseStatement parses one statement: a compound block, a lone comment, a
// return, an if/else-if/else chain, a while loop, a for-in loop, or a
// trailing expression statement.
func (p *Parser) parseStatement() ast.Stmt {
	cur := p.cur()
	switch {
	case cur.Kind == token.LBRACE:
		return p.parseCompound()
	case cur.Kind == token.COMMENT:
		p.advance()
		return &ast.CommentStmt{Tok: cur}
	case cur.IsKeyword(token.RETURN):
		p.advance()
		var value ast.Expr
		if p.cur().Kind != token.SEMICOLON {
			value = p.parseExpression(-1)
		}
		p.skip(token.SEMICOLON)
		return &ast.Return{Tok: cur, Value: value}
	case cur.IsKeyword(token.IF):
		return p.parseIf()
	case cur.IsKeyword(token.WHILE):
		return p.parseWhile()
	case cur.IsKeyword(token.FOR):
		return p.parseFor()
	default:
		expr := p.parseExpression(-1)
		p.skip(token.SEMICOLON)
		return &ast.ExprStmt{Tok: cur, Expr: expr}
	}
}

// parseCompound parses a `{ ... }` block, opening a fresh scope nested
// under the currently active one for the duration of its body. The caller
// must leave the current token at the opening '{'.
func (p *Parser) parseCompound() *ast.Compound {
	tok := p.cur()
	p.skip(token.LBRACE)

	scope := ast.NewScope(p.curScope)
	outer := p.curScope
	p.curScope = scope
	stmts := p.parseItems(false)
	p.curScope = outer

	p.skip(token.RBRACE)
	return &ast.Compound{Tok: tok, Stmts: stmts, Scope: scope}
}

// parseIf parses `if cond { ... } (else if cond { ... })* (else { ... })?`.
// An "else if" recurses into another *ast.Conditional rather than wrapping
// it in a one-statement Compound, so the chain reads as flat links rather
// than nested blocks.
func (p *Parser) parseIf() *ast.Conditional {
	tok := p.cur()
	p.advance()
	cond := p.parseExpression(-1)
	trueBody := p.parseCompound()

	var falseStmt ast.Stmt
	if p.cur().IsKeyword(token.ELSE) {
		p.advance()
		if p.cur().IsKeyword(token.IF) {
			falseStmt = p.parseIf()
		} else {
			falseStmt = p.parseCompound()
		}
	}

	return &ast.Conditional{Tok: tok, Condition: cond, True: trueBody, False: falseStmt}
}

func (p *Parser) parseWhile() *ast.Loop {
	tok := p.cur()
	p.advance()
	cond := p.parseExpression(-1)
	body := p.parseCompound()
	return &ast.Loop{Tok: tok, Condition: cond, Body: body}
}

// parseFor parses `for ident in start..end { body }`, desugaring it to a
// LOOP with init `ident = start`, condition `ident <= end` (the range is
// inclusive), and post `ident = ident + 1`. The loop variable is declared
// with INFERRED type directly in the body's own scope rather than a
// separate loop-header scope — there is nowhere else for it to live once
// the desugaring is applied.
func (p *Parser) parseFor() *ast.Loop {
	tok := p.cur()
	p.advance()

	nameTok := p.cur()
	if nameTok.Kind != token.IDENTIFIER {
		p.sink.Fail(nameTok, "expected a loop variable name, got %s", nameTok.Kind)
	}
	p.advance()
	p.skipKeyword(token.IN)

	start := p.parseExpression(-1)
	p.skip(token.DOTDOT)
	end := p.parseExpression(-1)

	bodyTok := p.cur()
	p.skip(token.LBRACE)

	scope := ast.NewScope(p.curScope)
	outer := p.curScope
	p.curScope = scope

	ivar := ast.NewVarDecl(nameTok, ast.Inferred)
	p.declareUnique(ast.DeclVariable, nameTok, ivar)

	stmts := p.parseItems(false)
	p.curScope = outer
	p.skip(token.RBRACE)

	body := &ast.Compound{Tok: bodyTok, Stmts: stmts, Scope: scope}

	ident := func() *ast.Primary {
		return &ast.Primary{Tok: nameTok, Kind: ast.PrimaryIdentifier, Name: nameTok.Lexeme}
	}

	init := &ast.ExprStmt{Tok: nameTok, Expr: &ast.Binary{
		Tok: nameTok, Kind: ast.BinaryAssign, Left: ident(), Right: start,
	}}
	cond := &ast.Binary{Tok: nameTok, Kind: ast.BinaryLe, Left: ident(), Right: end}
	post := &ast.ExprStmt{Tok: nameTok, Expr: &ast.Binary{
		Tok: nameTok, Kind: ast.BinaryAssign, Left: ident(),
		Right: &ast.Binary{
			Tok: nameTok, Kind: ast.BinaryAdd, Left: ident(),
			Right: &ast.Primary{Tok: nameTok, Kind: ast.PrimaryNumber, Number: 1},
		},
	}}

	return &ast.Loop{Tok: tok, Init: init, Condition: cond, Post: post, Body: body}
}

func (p *Parser) skipKeyword(k token.Kind) token.Token { return p.lex.SkipKeyword(k) }

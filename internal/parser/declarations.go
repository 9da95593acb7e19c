package parser

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/token"
)

// MaxCallArgs is the System V AMD64 integer-argument register count the
// emitter has available (rdi, rsi, rdx, rcx, r8, r9). A function declaring
// more arguments than this can never be emitted, so the parser rejects it
// immediately rather than letting it surface later as an emitter failure.
const MaxCallArgs = 6

// parseDeclaration parses one declaration starting at an IDENTIFIER already
// known (by looksLikeDeclaration) to be followed by ':' or '::'. It returns
// a synthetic *ast.ExprStmt for the cases that also produce an initializer
// assignment (a variable with an init expression), or nil otherwise.
func (p *Parser) parseDeclaration() ast.Stmt {
	nameTok := p.cur()
	p.advance()

	if p.cur().Kind == token.COLON_COLON {
		p.advance()
		ty := p.parseType()
		p.skip(token.SEMICOLON)
		decl := ast.NewTypeDecl(nameTok, ty)
		p.declareUnique(ast.DeclType, nameTok, decl)
		return nil
	}

	p.skip(token.COLON)

	switch {
	case p.cur().IsKeyword(token.FUNC):
		return p.parseFuncDecl(nameTok, false)
	case p.cur().IsKeyword(token.ASM):
		return p.parseFuncDecl(nameTok, true)
	case p.cur().Kind == token.ASSIGN:
		p.advance()
		init := p.parseExpression(-1)
		p.skip(token.SEMICOLON)
		decl := ast.NewVarDecl(nameTok, ast.Inferred)
		p.declareUnique(ast.DeclVariable, nameTok, decl)
		return p.makeInitStmt(nameTok, init)
	default:
		ty := p.parseType()
		var init ast.Expr
		if p.cur().Kind == token.ASSIGN {
			p.advance()
			init = p.parseExpression(-1)
		}
		p.skip(token.SEMICOLON)
		decl := ast.NewVarDecl(nameTok, ty)
		p.declareUnique(ast.DeclVariable, nameTok, decl)
		if init == nil {
			return nil
		}
		return p.makeInitStmt(nameTok, init)
	}
}

// parseFuncDecl parses the parameter list, optional `-> type` return type,
// and body (lux compound for a lux-bodied function, raw asm text for an
// asm-bodied one) of `name : func (...) -> type { ... }` or
// `name : asm (...) -> type { ... }`. The function name itself is declared
// in the scope active before the parameter list was opened: arguments and
// the function live in different scopes.
func (p *Parser) parseFuncDecl(nameTok token.Token, isAsm bool) ast.Stmt {
	outer := p.curScope
	p.advance() // consume 'func' / 'asm'

	p.skip(token.LPAREN)
	params := ast.NewScope(outer)
	p.curScope = params

	argCount := 0
	for p.cur().Kind != token.RPAREN {
		pnameTok := p.cur()
		if pnameTok.Kind != token.IDENTIFIER {
			p.sink.Fail(pnameTok, "expected a parameter name, got %s", pnameTok.Kind)
		}
		p.advance()
		p.skip(token.COLON)
		ptype := p.parseType()

		pdecl := ast.NewVarDecl(pnameTok, ptype)
		p.declareUnique(ast.DeclVariable, pnameTok, pdecl)
		argCount++

		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.skip(token.RPAREN)

	if argCount > MaxCallArgs {
		p.sink.Fail(nameTok, "function %q declares %d arguments, but at most %d are supported", nameTok.Lexeme, argCount, MaxCallArgs)
	}

	retType := ast.Type(ast.Void)
	if p.cur().Kind == token.ARROW {
		p.advance()
		retType = p.parseType()
	}

	fdecl := ast.NewFuncDecl(nameTok, retType, params, isAsm)

	p.curScope = outer
	p.declareUnique(ast.DeclFunction, nameTok, fdecl)

	if isAsm {
		if p.cur().Kind != token.LBRACE {
			p.sink.Fail(p.cur(), "expected '{' to start an assembly body, got %s", p.cur().Kind)
		}
		fdecl.AsmBody = p.lex.CaptureRawUntilBrace()
		return nil
	}

	p.curScope = params
	fdecl.Body = p.parseCompound()
	p.curScope = outer
	return nil
}

// makeInitStmt builds the synthetic `name = init;` assignment statement for
// a declaration with an initializer: the declaration itself carries no
// initializer, so the parser inserts an ordinary assignment right after it,
// resolved by the typer exactly like any other BINARY `=` (including
// INFERRED back-fill).
func (p *Parser) makeInitStmt(nameTok token.Token, init ast.Expr) ast.Stmt {
	left := &ast.Primary{Tok: nameTok, Kind: ast.PrimaryIdentifier, Name: nameTok.Lexeme}
	assign := &ast.Binary{Tok: nameTok, Kind: ast.BinaryAssign, Left: left, Right: init}
	return &ast.ExprStmt{Tok: nameTok, Expr: assign}
}

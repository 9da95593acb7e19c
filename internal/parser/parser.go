// Package parser implements the lux recursive-descent parser: a
// single-threaded pass that builds the AST and the scope graph together,
// recognizing declarations vs. statements as it goes.
package parser

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/token"
)

// Parser owns a cursor over a Lexer plus a "current scope" pointer that
// tracks where a new declaration lands; the struct scope a new struct
// member lands in is passed down through parseStructType and
// parseStructMembers instead of being held here. It is not reentrant and
// not safe for concurrent use — the whole pipeline is single-threaded.
type Parser struct {
	lex  *lexer.Lexer
	sink *errsink.Sink
	file string

	curScope *ast.Scope
}

// New creates a Parser consuming tokens from lex, routing diagnostics
// through sink, and attributing the resulting CodeUnit to file.
func New(lex *lexer.Lexer, sink *errsink.Sink, file string) *Parser {
	return &Parser{lex: lex, sink: sink, file: file}
}

func (p *Parser) cur() token.Token        { return p.lex.Current() }
func (p *Parser) peek(k int) token.Token  { return p.lex.PeekN(k) }
func (p *Parser) advance() token.Token    { return p.lex.Next() }
func (p *Parser) skip(k token.Kind) token.Token { return p.lex.Skip(k) }

// ParseCodeUnit parses the entire token stream as one code unit: a
// top-level sequence of declarations and comments, exactly like a compound
// block's contents but run to EOF instead of a closing brace, and with
// every pushed declaration marked global afterward.
func (p *Parser) ParseCodeUnit() *ast.CodeUnit {
	global := ast.NewScope(nil)
	p.curScope = global

	inits := p.parseItems(true)

	for _, d := range global.Order {
		d.SetGlobal(true)
	}

	return &ast.CodeUnit{File: p.file, Global: global, TopLevel: inits}
}

// looksLikeDeclaration recognizes the declaration lookahead: an IDENTIFIER
// followed by ':' or '::'.
func (p *Parser) looksLikeDeclaration() bool {
	if p.cur().Kind != token.IDENTIFIER {
		return false
	}
	next := p.peek(1).Kind
	return next == token.COLON || next == token.COLON_COLON
}

// parseItems parses a sequence of declarations/comments/statements until
// EOF (stopAtEOF) or a closing '}' — the shared body of both a compound
// block and the top-level code unit.
func (p *Parser) parseItems(stopAtEOF bool) []ast.Stmt {
	var out []ast.Stmt
	for {
		cur := p.cur()
		if stopAtEOF {
			if cur.Kind == token.EOF {
				break
			}
		} else if cur.Kind == token.RBRACE {
			break
		}

		if cur.Kind == token.COMMENT {
			p.advance()
			out = append(out, &ast.CommentStmt{Tok: cur})
			continue
		}

		if p.looksLikeDeclaration() {
			if s := p.parseDeclaration(); s != nil {
				out = append(out, s)
			}
			continue
		}

		out = append(out, p.parseStatement())
	}
	return out
}

// declareUnique pushes d into the current scope under kind, failing if a
// declaration of that kind and name is already visible — walking parent
// scopes, so a local cannot shadow-by-redeclaring a name from an
// enclosing scope.
func (p *Parser) declareUnique(kind ast.DeclKind, tok token.Token, d ast.Decl) {
	if existing, ok := p.curScope.Lookup(kind, tok.Lexeme); ok {
		p.sink.Fail(tok, "declaration is existing: %q, previously declared at %s", tok.Lexeme, existing.DeclToken().Pos)
	}
	p.curScope.Declare(d)
}

package parser

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/token"
)

// parseType parses the type grammar: a basic-type keyword, `*type`
// (pointer), `[N]type` (fixed-size array, N a literal number), a bare
// identifier (an as-yet-unresolved typedef reference), or a tagged
// struct/union.
func (p *Parser) parseType() ast.Type {
	cur := p.cur()

	switch {
	case cur.Kind == token.STAR:
		p.advance()
		return &ast.PointerType{Pointee: p.parseType()}

	case cur.Kind == token.LBRACKET:
		p.advance()
		sizeTok := p.cur()
		if sizeTok.Kind != token.NUMBER {
			p.sink.Fail(sizeTok, "array size must be a literal number, got %s", sizeTok.Kind)
		}
		p.advance()
		p.skip(token.RBRACKET)
		return &ast.PointerType{Pointee: p.parseType(), Count: int(sizeTok.Number)}

	case cur.IsKeyword(token.STRUCT) || cur.IsKeyword(token.UNION):
		return p.parseStructType(nil)

	case cur.Kind == token.IDENTIFIER:
		if kw, ok := token.Lookup(cur.Lexeme); ok {
			if bt, ok := ast.BasicByKeyword[kw]; ok {
				p.advance()
				return bt
			}
		}
		p.advance()
		return &ast.UnknownType{Name: cur.Lexeme, Tok: cur}

	default:
		p.sink.Fail(cur, "expected a type, got %s", cur.Kind)
		panic("unreachable")
	}
}

// parseStructType parses `(struct|union) { members }`. hoistInto is nil for
// a tagged aggregate (one that gets its own StructScope) and the enclosing
// tagged aggregate's scope for an anonymous nested one, whose members are
// hoisted directly into it rather than getting a scope of their own.
func (p *Parser) parseStructType(hoistInto *ast.StructScope) *ast.StructType {
	kindTok := p.cur()
	isUnion := kindTok.IsKeyword(token.UNION)
	p.advance()
	p.skip(token.LBRACE)

	var scope *ast.StructScope
	target := hoistInto
	if target == nil {
		scope = ast.NewStructScope()
		target = scope
	}

	members := p.parseStructMembers(target)
	p.skip(token.RBRACE)

	return &ast.StructType{IsUnion: isUnion, Members: members, Scope: scope}
}

// parseStructMembers parses `name : type ;` members and anonymous nested
// `struct|union { ... }` members until the closing '}'. Named members are
// registered into target for uniqueness checking and DOT lookup; anonymous
// nested aggregates recurse with the same target so their own members
// hoist up transparently, however deep the nesting goes.
func (p *Parser) parseStructMembers(target *ast.StructScope) []*ast.StructMember {
	var members []*ast.StructMember
	for p.cur().Kind != token.RBRACE {
		cur := p.cur()
		switch {
		case cur.Kind == token.IDENTIFIER && p.peek(1).Kind == token.COLON:
			nameTok := cur
			p.advance()
			p.skip(token.COLON)
			ty := p.parseType()
			p.skip(token.SEMICOLON)

			m := &ast.StructMember{Name: nameTok.Lexeme, Type: ty, Tok: nameTok}
			if existing, ok := target.Lookup(m.Name); ok {
				p.sink.Fail(nameTok, "duplicate struct member %q, previously declared at %s", m.Name, existing.Tok.Pos)
			}
			target.Declare(m.Name, m)
			members = append(members, m)

		case cur.IsKeyword(token.STRUCT) || cur.IsKeyword(token.UNION):
			anon := p.parseStructType(target)
			p.skip(token.SEMICOLON)
			members = append(members, &ast.StructMember{Type: anon, Tok: cur})

		default:
			p.sink.Fail(cur, "expected a struct member, got %s", cur.Kind)
		}
	}
	return members
}

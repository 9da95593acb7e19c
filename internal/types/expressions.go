package types

import "github.com/luxlang/luxc/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.Binary:
		r.resolveBinary(v)
	case *ast.Unary:
		r.resolveUnary(v)
	case *ast.Primary:
		r.resolvePrimary(v)
	case *ast.Call:
		r.resolveCall(v)
	case *ast.Dot:
		r.resolveDot(v)
	default:
		panic("types: unhandled expression kind")
	}
}

// resolveBinary types a two-operand expression, including BINARY `='s
// INFERRED back-fill and the pointer-arithmetic rewrite of `+`. Every node
// memoizes via its own Type() != nil check, so a re-entrant pass over an
// already-typed subtree — and the rewrite it may have performed — never
// repeats.
func (r *Resolver) resolveBinary(b *ast.Binary) {
	if b.Type() != nil {
		return
	}

	r.resolveExpr(b.Right)
	r.resolveExpr(b.Left)

	if b.Right.Type() == nil {
		r.unresolvedTypes = true
		return
	}

	if prim, ok := b.Left.(*ast.Primary); ok && prim.Kind == ast.PrimaryIdentifier && prim.Decl != nil && prim.Decl.DeclType().Kind() == ast.KindInferred {
		prim.Decl.SetDeclType(b.Right.Type())
		prim.SetType(b.Right.Type())
	} else if b.Left.Type() == nil {
		r.unresolvedTypes = true
		return
	}

	b.SetType(b.Left.Type())

	if b.Kind != ast.BinaryAdd {
		return
	}

	leftIsPtr := b.Left.Type().Kind() == ast.KindPointer
	rightIsPtr := b.Right.Type().Kind() == ast.KindPointer
	if !leftIsPtr && !rightIsPtr {
		return
	}
	if leftIsPtr && rightIsPtr {
		r.sink.Fail(b.Tok, "cannot use '+' on two pointers")
	}
	if !leftIsPtr && rightIsPtr {
		b.Left, b.Right = b.Right, b.Left
	}

	elemSize := b.Left.Type().(*ast.PointerType).Pointee.Size()

	scale := &ast.Primary{Tok: b.Tok, Kind: ast.PrimaryNumber, Number: uint64(elemSize)}
	mult := &ast.Binary{Tok: b.Tok, Kind: ast.BinaryMul, Left: b.Right, Right: scale}
	b.Right = mult

	r.resolveExpr(scale)
	r.resolveExpr(mult)

	b.SetType(b.Left.Type())
}

func (r *Resolver) resolveUnary(u *ast.Unary) {
	if u.Type() != nil {
		return
	}
	r.resolveExpr(u.Operand)
	if u.Operand.Type() == nil {
		r.unresolvedTypes = true
		return
	}

	switch u.Kind {
	case ast.UnaryAddressOf:
		u.SetType(&ast.PointerType{Pointee: u.Operand.Type()})
	case ast.UnaryDeref:
		pt, ok := u.Operand.Type().(*ast.PointerType)
		if !ok {
			r.sink.Fail(u.Tok, "cannot dereference a non-pointer expression of type %s", u.Operand.Type())
		}
		u.SetType(pt.Pointee)
	}
}

func (r *Resolver) resolvePrimary(p *ast.Primary) {
	if p.Type() != nil {
		return
	}

	switch p.Kind {
	case ast.PrimaryIdentifier:
		if p.Decl == nil {
			decl, ok := r.scope.Lookup(ast.DeclVariable, p.Name)
			if !ok {
				r.sink.Fail(p.Tok, "variable %q is not declared", p.Name)
			}
			p.Decl = decl
		}
		if ast.IsResolved(p.Decl.DeclType()) {
			p.SetType(p.Decl.DeclType())
			r.typeResolved = true
		} else {
			r.unresolvedTypes = true
		}
	case ast.PrimaryNumber:
		p.SetType(ast.U64)
		r.typeResolved = true
	case ast.PrimaryString:
		p.SetType(&ast.PointerType{Pointee: ast.Char})
		r.typeResolved = true
	}
}

// resolveCall types a function call's arguments and, on a successful
// lookup, its own type from the callee's declared return type. A call to a
// name that cannot be found is left untyped rather than failing outright
// here — the fixed-point driver's "no progress" check is what ultimately
// reports it, the same way any other irreducibly-unresolved reference does.
func (r *Resolver) resolveCall(c *ast.Call) {
	if c.Type() != nil {
		return
	}
	for _, arg := range c.Args {
		r.resolveExpr(arg)
	}

	callee, ok := c.Callee.(*ast.Primary)
	if !ok || callee.Kind != ast.PrimaryIdentifier {
		r.sink.Fail(c.Tok, "a call target must be a plain function name")
	}

	decl, ok := r.scope.Lookup(ast.DeclFunction, callee.Name)
	if !ok {
		r.unresolvedTypes = true
		return
	}
	r.typeResolved = true
	c.SetType(decl.(*ast.FuncDecl).ReturnType())
}

// resolveDot types a `base.member` expression, auto-dereferencing through
// any chain of pointers first by rewriting Base into nested UNARY DEREF
// nodes.
func (r *Resolver) resolveDot(d *ast.Dot) {
	if d.Type() != nil {
		return
	}
	if d.Base.Type() == nil {
		r.resolveExpr(d.Base)
	}
	if d.Base.Type() == nil {
		r.unresolvedTypes = true
		return
	}

	for d.Base.Type().Kind() == ast.KindPointer {
		pointee := d.Base.Type().(*ast.PointerType).Pointee
		deref := &ast.Unary{Tok: d.Tok, Kind: ast.UnaryDeref, Operand: d.Base}
		deref.SetType(pointee)
		d.Base = deref
	}

	st, ok := d.Base.Type().(*ast.StructType)
	if !ok || st.Scope == nil {
		r.sink.Fail(d.Tok, "'.' requires a struct or union operand, got %s", d.Base.Type())
	}

	member, ok := st.Scope.Lookup(d.Member)
	if !ok {
		r.sink.Fail(d.Tok, "type %s has no member %q", st, d.Member)
	}

	r.typeResolved = true
	d.Offset = member.Offset
	d.SetType(member.Type)
}

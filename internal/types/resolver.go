// Package types implements the lux type resolver: a fixed-point pass over
// the scope graph the parser built, resolving typedef references, filling
// in inferred variable types from their initializers, laying out
// structs/unions, and rewriting pointer arithmetic in place.
package types

import (
	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/token"
)

// Resolver drives one fixed-point convergence pass per code unit. It is not
// reentrant: one Resolver resolves one Program.
type Resolver struct {
	sink *errsink.Sink

	scope *ast.Scope

	// typeResolved records whether any declaration or expression made
	// forward progress during the current pass; unresolvedTypes records
	// whether anything is still left unresolved. Both are reset at the
	// start of every pass.
	typeResolved    bool
	unresolvedTypes bool

	lastUnresolved token.Token
}

// New creates a Resolver reporting through sink.
func New(sink *errsink.Sink) *Resolver {
	return &Resolver{sink: sink}
}

// ResolveProgram runs the fixed-point driver over every code unit in prog.
func (r *Resolver) ResolveProgram(prog *ast.Program) {
	for _, unit := range prog.Units {
		r.resolveUnit(unit)
	}
}

// resolveUnit iterates type_scope over the code unit's global scope until
// either nothing is left unresolved, or a full pass makes no forward
// progress at all while something remains unresolved — at which point the
// program can never converge and compilation fails.
func (r *Resolver) resolveUnit(unit *ast.CodeUnit) {
	for {
		r.typeResolved = false
		r.unresolvedTypes = false

		r.resolveScope(unit.Global)
		r.scope = unit.Global
		for _, s := range unit.TopLevel {
			r.resolveStmt(s)
		}
		r.scope = nil

		if !r.unresolvedTypes {
			return
		}
		if !r.typeResolved {
			r.sink.Fail(r.lastUnresolved, "type resolution made no progress this pass with unresolved types remaining")
		}
	}
}

// resolveScope resolves every TYPE declaration in scope, then every
// VARIABLE declaration, then types every FUNCTION's parameters and body —
// three separate passes in that order, matching the C original's
// type_scope.
func (r *Resolver) resolveScope(scope *ast.Scope) {
	prev := r.scope
	r.scope = scope
	defer func() { r.scope = prev }()

	for _, d := range scope.Order {
		if d.DeclKind() == ast.DeclType {
			r.resolveDeclarationType(d)
		}
	}
	for _, d := range scope.Order {
		if d.DeclKind() == ast.DeclVariable {
			r.resolveDeclarationType(d)
		}
	}
	for _, d := range scope.Order {
		if fd, ok := d.(*ast.FuncDecl); ok {
			r.resolveFunction(fd)
		}
	}
}

// resolveDeclarationType resolves one declaration's own type, saving and
// restoring the shared unresolvedTypes flag around it so one declaration's
// leftover placeholder doesn't poison the verdict on an unrelated one
// resolved earlier in the same pass.
func (r *Resolver) resolveDeclarationType(d ast.Decl) {
	saved := r.unresolvedTypes
	r.unresolvedTypes = false

	already := false
	if st, ok := d.DeclType().(*ast.StructType); ok && st.Scope != nil && st.Scope.TypingComplete {
		already = true
	}

	if !already {
		resolved := r.resolveType(d.DeclType())
		d.SetDeclType(resolved)
	}

	if r.unresolvedTypes {
		r.lastUnresolved = d.DeclToken()
	}
	r.unresolvedTypes = r.unresolvedTypes || saved
}

// resolveFunction resolves a function's parameter types, then — for a
// lux-bodied function — its body's own declarations and statements.
// Assembly-bodied functions have no body to type.
func (r *Resolver) resolveFunction(fd *ast.FuncDecl) {
	r.resolveScope(fd.Params)
	if !fd.IsAsm {
		r.resolveCompound(fd.Body)
	}
}

// resolveType resolves one Type node: recursing through pointers,
// resolving an UNKNOWN reference against the current scope's typedefs, or
// resolving a tagged struct/union's members. BASIC, VOID, and INFERRED
// placeholders pass through unchanged.
func (r *Resolver) resolveType(t ast.Type) ast.Type {
	switch v := t.(type) {
	case *ast.PointerType:
		v.Pointee = r.resolveType(v.Pointee)
		return v
	case *ast.UnknownType:
		return r.resolveUnknownType(v)
	case *ast.StructType:
		return r.resolveStructType(v)
	default:
		// *ast.BasicType, ast.InferredType, ast.VoidType: already concrete
		// or intentionally left as a placeholder for the BINARY `=` rule to
		// back-fill.
		return t
	}
}

func (r *Resolver) resolveUnknownType(u *ast.UnknownType) ast.Type {
	decl, ok := r.scope.Lookup(ast.DeclType, u.Name)
	if !ok {
		r.sink.Fail(u.Tok, "type %q is not declared", u.Name)
	}
	if ast.IsResolved(decl.DeclType()) {
		r.typeResolved = true
		return decl.DeclType()
	}
	r.unresolvedTypes = true
	return u
}

// resolveStructType resolves every member of a tagged struct/union's flat
// scope in place. Because anonymous nested aggregates hoist their named
// members into this same flat scope at parse time (rather than duplicating
// them), walking Scope.Order alone reaches every leaf member transitively —
// no separate recursion into Members is needed here (that happens in
// computeStructOffsets/fixStructOffsets instead, once typing completes).
//
// A member whose own type is itself a tagged struct/union (a field typed
// by an earlier typedef, or declared inline) is only counted as ready once
// that nested struct has actually been laid out (LaidOut()), not merely
// once its Kind() says STRUCT: ast.IsResolved alone is true for any
// *ast.StructType the moment a typedef lookup hands one back, even if that
// struct's own members haven't converged yet. Marking this struct's own
// TypingComplete from that premature signal would freeze its size/offsets
// at whatever stale value computeStructOffsets produced from the nested
// struct's still-unresolved members, and — unlike an ordinary unresolved
// type — nothing would ever revisit it to fix that up, since
// resolveDeclarationType skips a struct whose TypingComplete is already
// true. Laying out only proceeds once every member, transitively, is
// truly finished.
func (r *Resolver) resolveStructType(st *ast.StructType) ast.Type {
	if st.Scope == nil {
		return st
	}
	if st.Scope.TypingComplete {
		return st
	}

	ready := true
	for _, m := range st.Scope.Order {
		m.Type = r.resolveType(m.Type)
		if !ast.IsResolved(m.Type) {
			ready = false
			continue
		}
		if sub, ok := m.Type.(*ast.StructType); ok && !sub.LaidOut() {
			ready = false
		}
	}

	if !ready {
		r.unresolvedTypes = true
		return st
	}

	r.typeResolved = true
	st.Scope.TypingComplete = true
	computeStructOffsets(st)
	fixStructOffsets(st, 0)
	return st
}

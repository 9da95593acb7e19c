package types

import "github.com/luxlang/luxc/internal/ast"

// resolveCompound resolves a block's own local declarations, then types
// every statement in it in order.
func (r *Resolver) resolveCompound(c *ast.Compound) {
	prev := r.scope
	r.scope = c.Scope
	r.resolveScope(c.Scope)
	for _, s := range c.Stmts {
		r.resolveStmt(s)
	}
	r.scope = prev
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Compound:
		r.resolveCompound(v)
	case *ast.ExprStmt:
		r.resolveExpr(v.Expr)
	case *ast.CommentStmt:
		// Carries no type information.
	case *ast.Return:
		if v.Value != nil {
			r.resolveExpr(v.Value)
		}
	case *ast.Conditional:
		r.resolveExpr(v.Condition)
		r.resolveCompound(v.True)
		if v.False != nil {
			r.resolveStmt(v.False)
		}
	case *ast.Loop:
		r.resolveLoop(v)
	default:
		panic("types: unhandled statement kind")
	}
}

// resolveLoop mirrors the C original's type_loop_statement: the init,
// condition, and post clauses are typed with the loop body's own scope
// active (so a `for i in a..b` loop variable living in that scope is
// visible to them), and only afterward is the body's statement list typed
// through the ordinary resolveCompound path.
func (r *Resolver) resolveLoop(l *ast.Loop) {
	prev := r.scope
	r.scope = l.Body.Scope
	if l.Init != nil {
		r.resolveStmt(l.Init)
	}
	r.resolveExpr(l.Condition)
	if l.Post != nil {
		r.resolveStmt(l.Post)
	}
	r.scope = prev

	r.resolveCompound(l.Body)
}

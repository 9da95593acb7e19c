package emitter

import "github.com/luxlang/luxc/internal/ast"

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Compound:
		e.emitCompound(v)
	case *ast.ExprStmt:
		e.emitExpr(v.Expr)
	case *ast.Return:
		e.emitReturn(v)
	case *ast.Loop:
		e.emitLoop(v)
	case *ast.Conditional:
		e.emitConditional(v)
	case *ast.CommentStmt:
		e.emit("")
		e.emit("    # %s", v.Tok.Lexeme)
	default:
		e.failNode(s, "internal: statement kind not handled by the emitter")
	}
}

func (e *Emitter) emitCompound(c *ast.Compound) {
	for _, s := range c.Stmts {
		e.emitStmt(s)
	}
}

// emitReturn evaluates its value into %rax, then jumps to the current
// function's shared epilogue label rather than emitting one inline — a
// function can have many `return`s but only one prologue/epilogue pair.
func (e *Emitter) emitReturn(r *ast.Return) {
	if r.Value != nil {
		e.emitExpr(r.Value)
	}
	e.emit("    jmp end.%s", e.currentFunc.DeclName())
}

// emitLoop covers both `while` and the desugared `for i in a..b` form
// uniformly, since the parser has already reduced both to the same Init /
// Condition / Post / Body shape.
func (e *Emitter) emitLoop(l *ast.Loop) {
	number := e.loopCounter
	e.loopCounter++

	if l.Init != nil {
		e.emitStmt(l.Init)
	}
	e.emit("loop.start.%d:", number)

	e.emitExpr(l.Condition)
	e.emit("    cmp $0, %%rax")
	e.emit("    je loop.end.%d", number)

	e.emitStmt(l.Body)

	if l.Post != nil {
		e.emitStmt(l.Post)
	}
	e.emit("    jmp loop.start.%d", number)

	e.emit("loop.end.%d:", number)
}

// emitConditional emits an else-if chain by recursing through False, which
// is either another *ast.Conditional or a plain *ast.Compound — both are
// ast.Stmt, so emitStmt's dispatch handles either uniformly.
func (e *Emitter) emitConditional(c *ast.Conditional) {
	number := e.ifCounter
	e.ifCounter++

	e.emitExpr(c.Condition)
	e.emit("    cmp $0, %%rax")
	e.emit("    je if.false.%d", number)
	e.emitStmt(c.True)
	e.emit("    jmp if.end.%d", number)

	e.emit("if.false.%d:", number)
	if c.False != nil {
		e.emitStmt(c.False)
	}

	e.emit("if.end.%d:", number)
}

package printer

import "github.com/luxlang/luxc/internal/ast"

// Stmt dumps a single statement, mirroring the original's
// print_statement: a Compound marks every child but the last with the
// continuation mask so earlier siblings draw a `|` down to the next one.
func (p *Printer) Stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Compound:
		p.printf("Compound:\n")
		level := p.indentation
		p.indent(func() {
			p.mask[level] = len(v.Stmts) > 1
			for i, child := range v.Stmts {
				if i == len(v.Stmts)-1 {
					p.mask[level] = false
				}
				p.Stmt(child)
			}
		})
	case *ast.ExprStmt:
		p.printf("Expression:\n")
		p.indent(func() { p.Expr(v.Expr) })
	case *ast.Return:
		p.printf("Return:\n")
		if v.Value != nil {
			p.indent(func() { p.Expr(v.Value) })
		}
	case *ast.Loop:
		p.printf("Loop:\n")
		level := p.indentation
		p.indent(func() {
			p.mask[level] = true
			if v.Init != nil {
				p.Stmt(v.Init)
			}
			p.Expr(v.Condition)
			if v.Post == nil {
				p.mask[level] = false
			}
			p.Stmt(v.Body)
			if v.Post != nil {
				p.mask[level] = false
				p.Stmt(v.Post)
			}
		})
	case *ast.Conditional:
		p.printf("Conditional:\n")
		level := p.indentation
		p.indent(func() {
			p.mask[level] = true
			p.Expr(v.Condition)
			if v.False == nil {
				p.mask[level] = false
			}
			p.Stmt(v.True)
			if v.False != nil {
				p.mask[level] = false
				p.Stmt(v.False)
			}
		})
	case *ast.CommentStmt:
		p.printf("Comment: %s\n", v.Tok.Lexeme)
	default:
		p.printf("Statement not handled\n")
	}
}

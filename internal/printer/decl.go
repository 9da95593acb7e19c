package printer

import "github.com/luxlang/luxc/internal/ast"

// Decl dumps a single declaration: its kind, name, and type, recursing
// into a function's parameters and body. A struct/union typedef's member
// list is printed inline on its one Type line, not as child nodes.
func (p *Printer) Decl(d ast.Decl) {
	switch v := d.(type) {
	case *ast.VarDecl:
		p.printf("Var: %s : %s\n", v.DeclName(), v.DeclType())
	case *ast.FuncDecl:
		p.printf("Func: %s -> %s\n", v.DeclName(), v.ReturnType())
		level := p.indentation
		p.indent(func() {
			hasParams := len(v.Params.Order) > 0
			p.mask[level] = hasParams
			for i, pd := range v.Params.Order {
				if i == len(v.Params.Order)-1 {
					p.mask[level] = false
				}
				p.Decl(pd)
			}
			if v.IsAsm {
				p.printf("Asm body (%d bytes)\n", len(v.AsmBody))
				return
			}
			if v.Body != nil {
				p.Stmt(v.Body)
			}
		})
	case *ast.TypeDecl:
		p.printf("Type: %s :: %s\n", v.DeclName(), v.DeclType())
	default:
		p.printf("Decl not handled\n")
	}
}

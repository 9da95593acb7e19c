package printer

import "github.com/luxlang/luxc/internal/ast"

var binaryName = map[ast.BinaryKind]string{
	ast.BinaryAdd:    "+",
	ast.BinarySub:    "-",
	ast.BinaryMul:    "*",
	ast.BinaryDiv:    "/",
	ast.BinaryEq:     "==",
	ast.BinaryNe:     "!=",
	ast.BinaryLt:     "<",
	ast.BinaryLe:     "<=",
	ast.BinaryGt:     ">",
	ast.BinaryGe:     ">=",
	ast.BinaryAssign: "=",
}

var unaryName = map[ast.UnaryKind]string{
	ast.UnaryDeref:     "@",
	ast.UnaryAddressOf: "*",
}

// Expr dumps a single expression, matching the original's
// print_expression shape: Binary marks its left child as "more siblings
// follow" so the right child's branch continues at the same depth.
func (p *Printer) Expr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.Unary:
		p.printf("Unary: %s\n", unaryName[v.Kind])
		p.indent(func() { p.Expr(v.Operand) })
	case *ast.Binary:
		p.printf("Binary: %s\n", binaryName[v.Kind])
		level := p.indentation
		p.indent(func() {
			p.mask[level] = true
			p.Expr(v.Left)
			p.mask[level] = false
			p.Expr(v.Right)
		})
	case *ast.Primary:
		switch v.Kind {
		case ast.PrimaryNumber:
			p.printf("Number: %d\n", v.Number)
		case ast.PrimaryIdentifier:
			p.printf("Identifier: %s\n", v.Name)
		case ast.PrimaryString:
			p.printf("String: %q\n", v.Bytes)
		}
	case *ast.Call:
		p.printf("Call:\n")
		level := p.indentation
		p.indent(func() {
			p.mask[level] = len(v.Args) > 0
			p.Expr(v.Callee)
			for i, arg := range v.Args {
				if i == len(v.Args)-1 {
					p.mask[level] = false
				}
				p.Expr(arg)
			}
		})
	case *ast.Dot:
		p.printf("Dot: .%s\n", v.Member)
		p.indent(func() { p.Expr(v.Base) })
	default:
		p.printf("Expression not handled\n")
	}
}

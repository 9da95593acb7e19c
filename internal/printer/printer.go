// Package printer renders a lux AST as an indented tree, grounded on the
// original implementation's tree_printer.c: a running indentation counter
// plus a per-depth "more siblings follow" mask, so a node's branch prefix
// is `|-->` and a straight-down continuation is `|  ` only when an
// ancestor still has more children to print.
package printer

import (
	"fmt"
	"io"

	"github.com/luxlang/luxc/internal/ast"
)

const maxIndentation = 32

// Printer writes an indented tree to Out. It is not reentrant — like the
// original's global indentation/mask state, a single Printer walks one
// tree at a time.
type Printer struct {
	Out         io.Writer
	indentation int
	mask        [maxIndentation]bool
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{Out: w}
}

// printf writes the branch prefix (if any), then the formatted line.
func (p *Printer) printf(format string, args ...any) {
	if p.indentation > 0 {
		for i := 0; i < p.indentation-1; i++ {
			if p.mask[i] {
				io.WriteString(p.Out, "|  ")
			} else {
				io.WriteString(p.Out, "   ")
			}
		}
		io.WriteString(p.Out, "|-->")
	}
	fmt.Fprintf(p.Out, format, args...)
}

// indent runs body with the indentation one level deeper, unconditionally
// restoring it afterward even if body panics partway through a diagnostic
// dump.
func (p *Printer) indent(body func()) {
	p.indentation++
	defer func() { p.indentation-- }()
	body()
}

// Program dumps every code unit in prog in order.
func (p *Printer) Program(prog *ast.Program) {
	for _, unit := range prog.Units {
		p.CodeUnit(unit)
	}
}

// CodeUnit dumps unit's global declarations in declaration order, followed
// by any top-level comments and global initializer assignments — those
// live in TopLevel rather than Global.Order since an initializer isn't
// itself a declaration.
func (p *Printer) CodeUnit(unit *ast.CodeUnit) {
	p.printf("CodeUnit: %s\n", unit.File)
	level := p.indentation
	p.indent(func() {
		total := len(unit.Global.Order) + len(unit.TopLevel)
		i := 0
		next := func() {
			i++
			if i == total {
				p.mask[level] = false
			}
		}
		p.mask[level] = total > 1
		for _, d := range unit.Global.Order {
			p.Decl(d)
			next()
		}
		for _, s := range unit.TopLevel {
			p.Stmt(s)
			next()
		}
	})
}

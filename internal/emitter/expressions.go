package emitter

import "github.com/luxlang/luxc/internal/ast"

func (e *Emitter) emitExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Primary:
		e.emitPrimary(v)
	case *ast.Unary:
		e.emitUnary(v)
	case *ast.Binary:
		e.emitBinary(v)
	case *ast.Call:
		e.emitCall(v)
	case *ast.Dot:
		e.emitDot(v)
	default:
		e.failNode(expr, "internal: expression kind not handled by the emitter")
	}
}

// generateAddress computes an lvalue's address into %rax: a variable's
// frame offset or global label, a DEREF's operand value (the pointer value
// itself already is the address), or a DOT's base address plus its
// resolved byte offset.
func (e *Emitter) generateAddress(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Primary:
		if v.Kind != ast.PrimaryIdentifier {
			e.failNode(v, "cannot take the address of this expression")
		}
		if v.Decl.IsGlobal() {
			e.emit("    lea %s, %%rax", v.Decl.DeclName())
			return
		}
		e.emit("    lea %d(%%rbp), %%rax", v.Decl.(*ast.VarDecl).Offset)
	case *ast.Unary:
		if v.Kind != ast.UnaryDeref {
			e.failNode(v, "cannot take the address of this expression")
		}
		e.emitExpr(v.Operand)
	case *ast.Dot:
		e.generateAddress(v.Base)
		e.emit("    add $%d, %%rax", v.Offset)
	default:
		e.failNode(expr, "cannot take the address of this expression")
	}
}

// loadFromRax dereferences the address currently in %rax into %rax itself,
// sign-extending narrow loads up to 64 bits. A fixed-size array decays to
// its address — it is never loaded through.
func (e *Emitter) loadFromRax(ty ast.Type) {
	if pt, ok := ty.(*ast.PointerType); ok && pt.Count > 0 {
		return
	}
	switch ty.Size() {
	case 1:
		e.emit("    movsbq (%%rax), %%rax")
	case 2:
		e.emit("    movswq (%%rax), %%rax")
	case 4:
		e.emit("    movslq (%%rax), %%rax")
	case 8:
		e.emit("    movq (%%rax), %%rax")
	}
}

// storeToRaxAddress writes %rdi's low bytes to the address in %rax, width
// matching ty's size.
func (e *Emitter) storeToRaxAddress(ty ast.Type) {
	switch ty.Size() {
	case 1:
		e.emit("    movb %%dil, (%%rax)")
	case 2:
		e.emit("    movw %%di, (%%rax)")
	case 4:
		e.emit("    movl %%edi, (%%rax)")
	case 8:
		e.emit("    movq %%rdi, (%%rax)")
	}
}

func (e *Emitter) emitPrimary(p *ast.Primary) {
	switch p.Kind {
	case ast.PrimaryNumber:
		e.emit("    mov $%d, %%rax", p.Number)
	case ast.PrimaryIdentifier:
		e.generateAddress(p)
		e.loadFromRax(p.Type())
	case ast.PrimaryString:
		label := e.stringLabel()
		e.emitData("%s:", label)
		e.emitData("    .string %q", p.Bytes)
		e.emit("    lea %s, %%rax", label)
	}
}

func (e *Emitter) stringLabel() string {
	label := "string." + itoa(e.stringCounter)
	e.stringCounter++
	return label
}

func (e *Emitter) emitUnary(u *ast.Unary) {
	switch u.Kind {
	case ast.UnaryDeref:
		e.emitExpr(u.Operand)
		e.loadFromRax(u.Type())
	case ast.UnaryAddressOf:
		e.generateAddress(u.Operand)
	}
}

// emitBinary evaluates right then left (pushing right to the stack in
// between), matching the original's operand order exactly — it matters for
// division and the relational operators, where %rax and %rdi are not
// interchangeable.
func (e *Emitter) emitBinary(b *ast.Binary) {
	if b.Kind == ast.BinaryAssign {
		e.emitExpr(b.Right)
		e.pushRax()
		e.generateAddress(b.Left)
		e.pop("rdi")
		e.storeToRaxAddress(b.Type())
		return
	}

	e.emitExpr(b.Right)
	e.pushRax()
	e.emitExpr(b.Left)
	e.pop("rdi")

	switch b.Kind {
	case ast.BinaryAdd:
		e.emit("    add %%rdi, %%rax")
	case ast.BinarySub:
		e.emit("    sub %%rdi, %%rax")
	case ast.BinaryMul:
		e.emit("    imul %%rdi, %%rax")
	case ast.BinaryDiv:
		e.emit("    cdq")
		e.emit("    idiv %%rdi")
	case ast.BinaryEq:
		e.emitCompare("sete")
	case ast.BinaryNe:
		e.emitCompare("setne")
	case ast.BinaryLt:
		e.emitCompare("setl")
	case ast.BinaryLe:
		e.emitCompare("setle")
	case ast.BinaryGt:
		e.emitCompare("setg")
	case ast.BinaryGe:
		e.emitCompare("setge")
	default:
		e.failNode(b, "internal: binary operator not handled by the emitter")
	}
}

func (e *Emitter) emitCompare(setcc string) {
	e.emit("    cmp %%rdi, %%rax")
	e.emit("    %s %%al", setcc)
	e.emit("    movzb %%al, %%eax")
}

// emitCall pushes every argument left to right, then pops them off into
// the argument registers in reverse, so the register assignment ends up
// matching argument order despite the stack being LIFO.
func (e *Emitter) emitCall(c *ast.Call) {
	for _, arg := range c.Args {
		e.emitExpr(arg)
		e.pushRax()
	}
	for i := len(c.Args) - 1; i >= 0; i-- {
		e.pop(argumentRegisters[i])
	}

	e.emit("    mov $0, %%rax")

	callee, ok := c.Callee.(*ast.Primary)
	if !ok {
		e.failNode(c, "internal: call target is not a plain function name")
	}
	e.emit("    call %s", callee.Name)
}

func (e *Emitter) emitDot(d *ast.Dot) {
	e.generateAddress(d)
	e.loadFromRax(d.Type())
}

// itoa avoids pulling in strconv for a single base-10 non-negative int —
// kept local since it's the only place the emitter needs to format one.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

package emitter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/parser"
	"github.com/luxlang/luxc/internal/types"
)

func compileToAssembly(t *testing.T, src string) string {
	t.Helper()
	sink := errsink.New("test.lux", src)
	sink.Panic = true
	lex := lexer.New("test.lux", src, sink)
	unit := parser.New(lex, sink, "test.lux").ParseCodeUnit()

	prog := &ast.Program{Units: []*ast.CodeUnit{unit}}
	types.New(sink).ResolveProgram(prog)

	var out bytes.Buffer
	New(&out, sink).EmitProgram(prog)
	return out.String()
}

// TestEmitArithmeticExpression checks that `1 + 2 * 3` emits a literal move
// of the left operand and a multiply for the right-hand product (the
// product is emitted first, since binary operands are evaluated right to
// left).
func TestEmitArithmeticExpression(t *testing.T) {
	asm := compileToAssembly(t, `main : func () -> u64 { return 1 + 2 * 3; }`)
	if !strings.Contains(asm, "mov $1, %rax") {
		t.Errorf("expected %q to appear in the output:\n%s", "mov $1, %rax", asm)
	}
	if !strings.Contains(asm, "imul %rdi, %rax") {
		t.Errorf("expected %q to appear in the output:\n%s", "imul %rdi, %rax", asm)
	}
	snaps.MatchSnapshot(t, asm)
}

func TestEmitPointerArithmetic(t *testing.T) {
	asm := compileToAssembly(t, `a : *u32; main : func () -> u32 { return @(a + 1); }`)
	snaps.MatchSnapshot(t, asm)
}

func TestEmitStructMemberAccess(t *testing.T) {
	asm := compileToAssembly(t, `
point :: struct { x: u32; y: u32; };
p : point;
main : func () -> u32 { return p.x; }
`)
	snaps.MatchSnapshot(t, asm)
}

func TestEmitGlobalsAreZeroFilled(t *testing.T) {
	asm := compileToAssembly(t, `g : u32; main : func () -> u32 { return g; }`)
	if !strings.Contains(asm, "g:") || !strings.Contains(asm, ".zero 4") {
		t.Errorf("expected a zero-filled global reservation for g, got:\n%s", asm)
	}
}

func TestEmitAsmFunctionBodyVerbatim(t *testing.T) {
	asm := compileToAssembly(t, `
raw : asm () -> u64 {
	mov $1, %rax
	ret
}
`)
	if !strings.Contains(asm, "mov $1, %rax") || !strings.Contains(asm, "ret") {
		t.Errorf("expected the asm body to be forwarded verbatim, got:\n%s", asm)
	}
}

func TestEmitMoreThanSixArgumentsFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("parsing should already reject more than 6 arguments before the emitter ever sees them")
		}
	}()
	compileToAssembly(t, `f : func (a: u32, b: u32, c: u32, d: u32, e: u32, f: u32, g: u32) -> u32 { return 0; }`)
}

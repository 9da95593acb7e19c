// Package emitter turns a fully-typed lux AST into AT&T-syntax x86-64
// assembly text, grounded on the original implementation's
// generator.c: a single expression evaluator that always leaves its result
// in %rax, spilling through the stack around binary operators exactly like
// a textbook tree-walking codegen.
//
// Global variables are reserved as `.zero`-filled storage of their type's
// size. A global's initializer assignment (kept in CodeUnit.TopLevel) is
// never emitted, so every global starts out zero.
package emitter

import (
	"fmt"
	"io"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/buffer"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/token"
)

// argumentRegisters is the System V AMD64 integer-argument register order.
// A function with more parameters than this cannot be emitted — the
// parser already rejects it at parse time (see parser.MaxCallArgs), so
// reaching the limit here would be an internal inconsistency, not a normal
// compile error.
var argumentRegisters = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// Emitter writes one assembly file from a Program. It is not reentrant.
type Emitter struct {
	out  io.Writer
	data *buffer.Buffer
	sink *errsink.Sink

	stackLevel    int
	stringCounter int
	loopCounter   int
	ifCounter     int
	currentFunc   *ast.FuncDecl
}

// New creates an Emitter writing assembly text to out.
func New(out io.Writer, sink *errsink.Sink) *Emitter {
	return &Emitter{out: out, data: buffer.New(), sink: sink}
}

func (e *Emitter) emit(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
	fmt.Fprint(e.out, "\n")
}

func (e *Emitter) emitData(format string, args ...any) {
	e.data.AppendFormat(format, args...)
	e.data.AppendString("\n")
}

// flushDataSegment appends a `.data` section header and every staged
// string/global entry collected since the last flush, then clears the
// stage.
func (e *Emitter) flushDataSegment() {
	if e.data.Len() == 0 {
		return
	}
	e.emit("")
	e.emit("    .data")
	e.out.Write(e.data.Bytes())
	e.data.Reset()
}

func (e *Emitter) failNode(n ast.Node, format string, args ...any) {
	e.sink.Fail(token.Token{Pos: n.Pos()}, format, args...)
}

// align rounds n up to the next multiple of alignment.
func align(n, alignment int) int {
	if alignment == 0 {
		return n
	}
	if rem := n % alignment; rem != 0 {
		n += alignment - rem
	}
	return n
}

func (e *Emitter) pushRax() {
	e.emit("    push %%rax")
	e.stackLevel++
}

func (e *Emitter) pop(reg string) {
	e.emit("    pop %%%s", reg)
	e.stackLevel--
}

// EmitProgram emits every code unit of prog in order.
func (e *Emitter) EmitProgram(prog *ast.Program) {
	for _, unit := range prog.Units {
		e.emitCodeUnit(unit)
	}
}

func (e *Emitter) emitCodeUnit(unit *ast.CodeUnit) {
	e.emit("# Code unit : %s", unit.File)
	e.emit("# ------------------------------------------------------")
	e.emit("")
	e.emitScope(unit.Global)
}

// emitScope emits every function declared in scope, then — only for the
// global scope — a `.zero`-filled reservation for every global variable
//. Locals never reach here directly; they're handled by
// emitFunction's frame layout instead.
func (e *Emitter) emitScope(scope *ast.Scope) {
	for _, d := range scope.Order {
		if fd, ok := d.(*ast.FuncDecl); ok {
			e.emitFunction(fd)
		}
	}

	if scope.Parent == nil {
		for _, d := range scope.Order {
			if vd, ok := d.(*ast.VarDecl); ok {
				e.emitData("%s:", vd.DeclName())
				e.emitData("    .zero %d", vd.DeclType().Size())
			}
		}
	}

	e.flushDataSegment()
}

// computeLocals assigns every VarDecl reachable from scope a negative
// frame-relative offset, children first (depth-first) and this scope's own
// variables last — the same traversal order as the original's
// compute_locals_from_scope, odd as it looks: a deeply nested block's
// locals end up closer to %rbp than the function's own parameters.
func computeLocals(scope *ast.Scope, offset int) int {
	for _, child := range scope.Children {
		offset = computeLocals(child, offset)
	}
	for _, d := range scope.Order {
		vd, ok := d.(*ast.VarDecl)
		if !ok {
			continue
		}
		offset += vd.DeclType().Size()
		offset = align(offset, vd.DeclType().Align())
		vd.Offset = -offset
	}
	return offset
}

// emitFunction emits a single function's prologue, body, and epilogue —
// or, for an asm-bodied function, its raw opaque text verbatim between a
// label and nothing else.
func (e *Emitter) emitFunction(fd *ast.FuncDecl) {
	if fd.IsAsm {
		e.emit("")
		e.emit("    .text")
		e.emit("    .globl %s", fd.DeclName())
		e.emit("%s:", fd.DeclName())
		io.WriteString(e.out, fd.AsmBody)
		e.emit("")
		return
	}

	e.currentFunc = fd
	frameSize := align(computeLocals(fd.Params, 0), 16)

	e.emit("")
	e.emit("    .text")
	e.emit("    .globl %s", fd.DeclName())
	e.emit("%s:", fd.DeclName())
	e.emit("    push %%rbp")
	e.emit("    mov %%rsp, %%rbp")
	e.emit("    sub $%d, %%rsp", frameSize)

	reg := 0
	for _, d := range fd.Params.Order {
		vd, ok := d.(*ast.VarDecl)
		if !ok {
			continue
		}
		if reg >= len(argumentRegisters) {
			e.failNode(fd, "function %q uses more than %d arguments", fd.DeclName(), len(argumentRegisters))
		}
		e.emit("    mov %%%s, %d(%%rbp)", argumentRegisters[reg], vd.Offset)
		reg++
	}

	e.emitStmt(fd.Body)

	e.emit("end.%s:", fd.DeclName())
	e.emit("    mov %%rbp, %%rsp")
	e.emit("    pop %%rbp")
	e.emit("    ret")

	e.flushDataSegment()
}

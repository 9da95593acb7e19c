package parser

import (
	"testing"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
)

func parse(t *testing.T, src string) *ast.CodeUnit {
	t.Helper()
	sink := errsink.New("test.lux", src)
	sink.Panic = true
	lex := lexer.New("test.lux", src, sink)
	p := New(lex, sink, "test.lux")
	return p.ParseCodeUnit()
}

func mustPanic(t *testing.T, why string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic: %s", why)
		}
	}()
	fn()
}

func TestParsePrecedenceClimbing(t *testing.T) {
	unit := parse(t, `main : func () -> u64 { return 1 + 2 * 3; }`)

	fd, ok := unit.Global.Order[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected a FuncDecl, got %T", unit.Global.Order[0])
	}
	if len(fd.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fd.Body.Stmts))
	}
	ret, ok := fd.Body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected a Return, got %T", fd.Body.Stmts[0])
	}
	plus, ok := ret.Value.(*ast.Binary)
	if !ok || plus.Kind != ast.BinaryAdd {
		t.Fatalf("expected a BINARY +, got %#v", ret.Value)
	}
	left, ok := plus.Left.(*ast.Primary)
	if !ok || left.Kind != ast.PrimaryNumber || left.Number != 1 {
		t.Fatalf("expected left operand 1, got %#v", plus.Left)
	}
	mul, ok := plus.Right.(*ast.Binary)
	if !ok || mul.Kind != ast.BinaryMul {
		t.Fatalf("expected right operand to be a BINARY *, got %#v", plus.Right)
	}
	if n, ok := mul.Left.(*ast.Primary); !ok || n.Number != 2 {
		t.Fatalf("expected 2 * 3, got left %#v", mul.Left)
	}
	if n, ok := mul.Right.(*ast.Primary); !ok || n.Number != 3 {
		t.Fatalf("expected 2 * 3, got right %#v", mul.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	unit := parse(t, `main : func () -> u64 { return 1 - 2 - 3; }`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	ret := fd.Body.Stmts[0].(*ast.Return)

	outer, ok := ret.Value.(*ast.Binary)
	if !ok || outer.Kind != ast.BinarySub {
		t.Fatalf("expected outer -, got %#v", ret.Value)
	}
	inner, ok := outer.Left.(*ast.Binary)
	if !ok || inner.Kind != ast.BinarySub {
		t.Fatalf("expected (1 - 2) - 3 to left-associate, got left operand %#v", outer.Left)
	}
	if n, ok := outer.Right.(*ast.Primary); !ok || n.Number != 3 {
		t.Fatalf("expected outer right operand 3, got %#v", outer.Right)
	}
}

func TestParseIndexDesugarsToDerefOfPlus(t *testing.T) {
	unit := parse(t, `a : *u32; main : func () -> u32 { return a[1]; }`)
	fd := unit.Global.Order[1].(*ast.FuncDecl)
	ret := fd.Body.Stmts[0].(*ast.Return)

	deref, ok := ret.Value.(*ast.Unary)
	if !ok || deref.Kind != ast.UnaryDeref {
		t.Fatalf("expected a[1] to desugar to a DEREF, got %#v", ret.Value)
	}
	sum, ok := deref.Operand.(*ast.Binary)
	if !ok || sum.Kind != ast.BinaryAdd {
		t.Fatalf("expected the DEREF operand to be a + , got %#v", deref.Operand)
	}
}

func TestParseVariableDeclarationForms(t *testing.T) {
	unit := parse(t, `
		a : u32;
		b : u32 = 2;
		c : = 3;
	`)
	if len(unit.Global.Order) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(unit.Global.Order))
	}
	for i, name := range []string{"a", "b", "c"} {
		d := unit.Global.Order[i]
		if d.DeclName() != name {
			t.Errorf("declaration %d: got name %q, want %q", i, d.DeclName(), name)
		}
		if d.DeclKind() != ast.DeclVariable {
			t.Errorf("declaration %d: got kind %v, want DeclVariable", i, d.DeclKind())
		}
	}
	if _, ok := unit.Global.Order[2].DeclType().(ast.InferredType); !ok {
		t.Errorf("c's declared type should start INFERRED, got %#v", unit.Global.Order[2].DeclType())
	}

	// b and c each produced a synthetic init assignment in TopLevel.
	if len(unit.TopLevel) != 2 {
		t.Fatalf("expected 2 synthetic init statements, got %d", len(unit.TopLevel))
	}
}

func TestParseTypedefForm(t *testing.T) {
	unit := parse(t, `myint :: u32;`)
	d := unit.Global.Order[0]
	if d.DeclKind() != ast.DeclType {
		t.Fatalf("expected a TypeDecl, got kind %v", d.DeclKind())
	}
	if d.DeclName() != "myint" {
		t.Errorf("got name %q, want myint", d.DeclName())
	}
}

func TestParseStructDeclaration(t *testing.T) {
	unit := parse(t, `
		point :: struct { x: u32; y: u32; };
		p : point;
	`)
	typeDecl := unit.Global.Order[0]
	st, ok := typeDecl.DeclType().(*ast.StructType)
	if !ok {
		t.Fatalf("expected point's type to be a StructType, got %T", typeDecl.DeclType())
	}
	if st.IsUnion {
		t.Errorf("point should be a struct, not a union")
	}
	if len(st.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(st.Members))
	}
	if st.Scope == nil {
		t.Fatal("a tagged struct must have its own StructScope")
	}
	if _, ok := st.Scope.Lookup("x"); !ok {
		t.Error("expected member x to be registered in the struct scope")
	}
}

func TestParseAnonymousNestedStructHoistsMembers(t *testing.T) {
	unit := parse(t, `
		outer :: struct {
			a: u32;
			struct { b: u32; c: u32; };
		};
	`)
	st := unit.Global.Order[0].DeclType().(*ast.StructType)
	for _, name := range []string{"a", "b", "c"} {
		if _, ok := st.Scope.Lookup(name); !ok {
			t.Errorf("expected anonymous member %q to be hoisted into the enclosing struct scope", name)
		}
	}
	if len(st.Members) != 2 {
		t.Fatalf("expected 2 top-level members (a, and the anonymous aggregate), got %d", len(st.Members))
	}
}

func TestParseDuplicateStructMemberFails(t *testing.T) {
	mustPanic(t, "duplicate struct member must fail", func() {
		parse(t, `s :: struct { x: u32; x: u64; };`)
	})
}

func TestParseUnionDeclaration(t *testing.T) {
	unit := parse(t, `u :: union { a: u8; b: u64; };`)
	st := unit.Global.Order[0].DeclType().(*ast.StructType)
	if !st.IsUnion {
		t.Error("expected a union")
	}
}

func TestParseFunctionDeclarationTwoScopeStructure(t *testing.T) {
	unit := parse(t, `
		add : func (a: u32, b: u32) -> u32 {
			x : u32 = 0;
			return a + b + x;
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	if len(fd.Params.Order) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fd.Params.Order))
	}
	if fd.Body.Scope == fd.Params {
		t.Fatal("the body must open a scope distinct from the parameter scope")
	}
	if fd.Body.Scope.Parent != fd.Params {
		t.Fatal("the body's scope must be nested directly under the parameter scope")
	}
}

func TestParseAsmFunctionPreservesRawBody(t *testing.T) {
	unit := parse(t, `
		raw : asm () -> u64 {
			mov $1, %rax
			ret
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	if !fd.IsAsm {
		t.Fatal("expected an assembly-bodied function")
	}
	if fd.Body != nil {
		t.Fatal("an assembly-bodied function must have no lux compound body")
	}
	want := "\n\t\t\tmov $1, %rax\n\t\t\tret\n\t\t"
	if fd.AsmBody != want {
		t.Errorf("asm body = %q, want %q", fd.AsmBody, want)
	}
}

func TestParseForLoopDesugaring(t *testing.T) {
	unit := parse(t, `
		main : func () -> u64 {
			for i in 0..10 {
				i = i;
			}
			return 0;
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	loop, ok := fd.Body.Stmts[0].(*ast.Loop)
	if !ok {
		t.Fatalf("expected a Loop, got %T", fd.Body.Stmts[0])
	}
	if loop.Init == nil || loop.Post == nil {
		t.Fatal("a for-in loop must desugar to a Loop with Init and Post set")
	}
	cond, ok := loop.Condition.(*ast.Binary)
	if !ok || cond.Kind != ast.BinaryLe {
		t.Fatalf("expected the desugared condition to use <=, got %#v", loop.Condition)
	}
	if _, ok := loop.Body.Scope.Lookup(ast.DeclVariable, "i"); !ok {
		t.Error("expected the loop variable i to be declared in the loop body's scope")
	}
}

func TestParseWhileLoopHasNoInitOrPost(t *testing.T) {
	unit := parse(t, `
		main : func () -> u64 {
			while 1 {
			}
			return 0;
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	loop := fd.Body.Stmts[0].(*ast.Loop)
	if loop.Init != nil || loop.Post != nil {
		t.Error("a while loop must not have an Init or Post")
	}
}

func TestParseIfElseIfElseChain(t *testing.T) {
	unit := parse(t, `
		main : func () -> u64 {
			if 1 {
			} else if 2 {
			} else {
			}
			return 0;
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	top, ok := fd.Body.Stmts[0].(*ast.Conditional)
	if !ok {
		t.Fatalf("expected a Conditional, got %T", fd.Body.Stmts[0])
	}
	elseIf, ok := top.False.(*ast.Conditional)
	if !ok {
		t.Fatalf("expected the else-if link to be another Conditional, got %T", top.False)
	}
	if _, ok := elseIf.False.(*ast.Compound); !ok {
		t.Fatalf("expected the final else to be a Compound, got %T", elseIf.False)
	}
}

func TestParseEmptyCompoundHasFreshScope(t *testing.T) {
	unit := parse(t, `
		main : func () -> u64 {
			{ }
			return 0;
		}
	`)
	fd := unit.Global.Order[0].(*ast.FuncDecl)
	inner, ok := fd.Body.Stmts[0].(*ast.Compound)
	if !ok {
		t.Fatalf("expected a Compound, got %T", fd.Body.Stmts[0])
	}
	if len(inner.Stmts) != 0 {
		t.Errorf("expected 0 statements, got %d", len(inner.Stmts))
	}
	if inner.Scope == nil || inner.Scope == fd.Body.Scope {
		t.Error("an empty compound must still own a fresh scope distinct from its parent")
	}
}

func TestParseDuplicateDeclarationFails(t *testing.T) {
	mustPanic(t, "duplicate variable declaration in the same scope must fail", func() {
		parse(t, `x : u32; x : u64;`)
	})
}

func TestParseDuplicateDeclarationAcrossParentScopesFails(t *testing.T) {
	mustPanic(t, "a local redeclaring a visible global name must fail (parent-walking uniqueness)", func() {
		parse(t, `
			x : u32;
			main : func () -> u64 {
				x : u64;
				return 0;
			}
		`)
	})
}

func TestParseTooManyArgumentsFails(t *testing.T) {
	mustPanic(t, "more than 6 arguments must fail at parse time", func() {
		parse(t, `f : func (a: u32, b: u32, c: u32, d: u32, e: u32, f: u32, g: u32) -> u32 { return 0; }`)
	})
}

func TestParseGlobalDeclarationsMarkedGlobal(t *testing.T) {
	unit := parse(t, `x : u32; f : func () -> u32 { y : u32; return y; }`)
	for _, d := range unit.Global.Order {
		if !d.IsGlobal() {
			t.Errorf("top-level declaration %q must be marked global", d.DeclName())
		}
	}
	fd := unit.Global.Order[1].(*ast.FuncDecl)
	for _, d := range fd.Body.Scope.Order {
		if d.IsGlobal() {
			t.Errorf("local declaration %q must not be marked global", d.DeclName())
		}
	}
}

func TestParseNonLiteralArraySizeFails(t *testing.T) {
	mustPanic(t, "a non-literal array size must fail at parse time", func() {
		parse(t, `n : u32; a : [n]u32;`)
	})
}

func TestParseCallWithTrailingArgNoComma(t *testing.T) {
	unit := parse(t, `
		add : func (a: u32, b: u32) -> u32 { return a + b; }
		main : func () -> u32 { return add(1, 2); }
	`)
	fd := unit.Global.Order[1].(*ast.FuncDecl)
	ret := fd.Body.Stmts[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected a Call, got %#v", ret.Value)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Args))
	}
}

func TestParseDotMember(t *testing.T) {
	unit := parse(t, `point :: struct { x: u32; }; p : point; main : func () -> u32 { return p.x; }`)
	fd := unit.Global.Order[2].(*ast.FuncDecl)
	ret := fd.Body.Stmts[0].(*ast.Return)
	dot, ok := ret.Value.(*ast.Dot)
	if !ok {
		t.Fatalf("expected a Dot, got %#v", ret.Value)
	}
	if dot.Member != "x" {
		t.Errorf("got member %q, want x", dot.Member)
	}
}

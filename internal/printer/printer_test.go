package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/parser"
)

func parseForPrinting(t *testing.T, src string) *ast.CodeUnit {
	t.Helper()
	sink := errsink.New("test.lux", src)
	sink.Panic = true
	lex := lexer.New("test.lux", src, sink)
	return parser.New(lex, sink, "test.lux").ParseCodeUnit()
}

func TestCodeUnitDumpsTopLevelDeclarations(t *testing.T) {
	unit := parseForPrinting(t, `main : func () -> u64 { return 1 + 2 * 3; }`)

	var out bytes.Buffer
	New(&out).CodeUnit(unit)
	dump := out.String()

	for _, want := range []string{
		"CodeUnit: test.lux",
		"Func: main -> u64",
		"Return:",
		"Binary: +",
		"Binary: *",
		"Number: 1",
		"Number: 2",
		"Number: 3",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, dump)
		}
	}
}

func TestVarDeclDump(t *testing.T) {
	unit := parseForPrinting(t, `x : u32;`)

	var out bytes.Buffer
	New(&out).CodeUnit(unit)
	dump := out.String()

	if !strings.Contains(dump, "Var: x : u32") {
		t.Errorf("expected a Var line for x, got:\n%s", dump)
	}
}

func TestStructTypedefDump(t *testing.T) {
	unit := parseForPrinting(t, `point :: struct { x: u32; y: u32; };`)

	var out bytes.Buffer
	New(&out).CodeUnit(unit)
	dump := out.String()

	if !strings.Contains(dump, "Type: point ::") {
		t.Errorf("expected a Type line for point, got:\n%s", dump)
	}
}

// TestBranchPrefixesReflectSiblingPosition checks that an earlier sibling
// in a multi-statement compound draws a continuation branch while the
// last one does not carry the mask any deeper.
func TestBranchPrefixesReflectSiblingPosition(t *testing.T) {
	unit := parseForPrinting(t, `
main : func () -> u64 {
	x : u64 = 1;
	return x;
}
`)
	var out bytes.Buffer
	New(&out).CodeUnit(unit)
	dump := out.String()

	if strings.Count(dump, "|-->") < 2 {
		t.Errorf("expected multiple branch markers in a multi-line dump, got:\n%s", dump)
	}
	if !strings.Contains(dump, "      |  |-->Binary: =") {
		t.Errorf("expected the earlier sibling's subtree to draw a continuation branch, got:\n%s", dump)
	}
	if !strings.Contains(dump, "\n         |-->Identifier: x\n") {
		t.Errorf("expected the last sibling's subtree to carry no continuation branch, got:\n%s", dump)
	}
}

package errsink

import (
	"strings"
	"testing"

	"github.com/luxlang/luxc/internal/token"
)

func TestFailRendersCaretUnderLexeme(t *testing.T) {
	src := "line one\nline two\nbad token here\n"
	sink := New("test.lux", src)
	sink.Panic = true

	tok := token.Token{Lexeme: "token", Pos: token.Position{Line: 3, Column: 5}}

	var rendered string
	func() {
		defer func() {
			if r := recover(); r != nil {
				rendered = r.(string)
			}
		}()
		sink.Fail(tok, "unexpected %s", "token")
	}()

	if rendered == "" {
		t.Fatal("expected Fail to panic with a rendered message")
	}
	if !strings.Contains(rendered, "test.lux:3:5: error: unexpected token") {
		t.Errorf("rendered message missing the location/message line:\n%s", rendered)
	}
	if !strings.Contains(rendered, "line one") || !strings.Contains(rendered, "line two") {
		t.Errorf("rendered message should include preceding context lines:\n%s", rendered)
	}
	if !strings.Contains(rendered, "^") {
		t.Errorf("rendered message should include a caret:\n%s", rendered)
	}
}

func TestFailLimitsContextToThreeLines(t *testing.T) {
	src := "a\nb\nc\nd\ne\n"
	sink := New("test.lux", src)
	sink.Panic = true

	tok := token.Token{Lexeme: "e", Pos: token.Position{Line: 5, Column: 1}}

	var rendered string
	func() {
		defer func() { rendered = recover().(string) }()
		sink.Fail(tok, "boom")
	}()

	if strings.Contains(rendered, "| a\n") {
		t.Errorf("expected at most 3 preceding lines of context, line 'a' should have been dropped:\n%s", rendered)
	}
	if !strings.Contains(rendered, "| b\n") || !strings.Contains(rendered, "| c\n") || !strings.Contains(rendered, "| d\n") {
		t.Errorf("expected the 3 lines immediately preceding the error:\n%s", rendered)
	}
}

package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		lexeme string
		want   Kind
	}{
		{"func", FUNC},
		{"asm", ASM},
		{"u8", U8},
		{"s64", S64},
		{"char", CHAR},
		{"return", RETURN},
		{"for", FOR},
		{"while", WHILE},
		{"if", IF},
		{"else", ELSE},
		{"in", IN},
		{"struct", STRUCT},
		{"union", UNION},
	}
	for _, c := range cases {
		got, ok := Lookup(c.lexeme)
		if !ok {
			t.Errorf("Lookup(%q): not found", c.lexeme)
			continue
		}
		if got != c.want {
			t.Errorf("Lookup(%q) = %v, want %v", c.lexeme, got, c.want)
		}
	}
}

func TestLookupNonKeyword(t *testing.T) {
	for _, lexeme := range []string{"main", "x", "Func", "FUNC", "returns"} {
		if _, ok := Lookup(lexeme); ok {
			t.Errorf("Lookup(%q): expected not found", lexeme)
		}
	}
}

func TestTokenIsKeyword(t *testing.T) {
	kwTok := Token{Kind: IDENTIFIER, Lexeme: "struct"}
	if !kwTok.IsKeyword(STRUCT) {
		t.Errorf("expected %v to be keyword STRUCT", kwTok)
	}
	if kwTok.IsKeyword(UNION) {
		t.Errorf("did not expect %v to be keyword UNION", kwTok)
	}

	identTok := Token{Kind: IDENTIFIER, Lexeme: "struct_count"}
	if identTok.IsKeyword(STRUCT) {
		t.Errorf("did not expect %v to be keyword STRUCT", identTok)
	}

	numTok := Token{Kind: NUMBER, Lexeme: "struct"}
	if numTok.IsKeyword(STRUCT) {
		t.Errorf("a non-IDENTIFIER token must never be a keyword: %v", numTok)
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !FUNC.IsKeyword() {
		t.Errorf("FUNC.IsKeyword() = false, want true")
	}
	if IDENTIFIER.IsKeyword() {
		t.Errorf("IDENTIFIER.IsKeyword() = true, want false")
	}
	if PLUS.IsKeyword() {
		t.Errorf("PLUS.IsKeyword() = true, want false")
	}
}

// Package lexer implements the lux tokenizer: a bounded-lookahead,
// bounded-rewind token stream over a source buffer.
package lexer

import (
	"fmt"
	"strings"

	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/token"
)

// Peek is the maximum number of tokens of lookahead the Lexer supports.
// Undo is the maximum number of tokens the Lexer can rewind.
const (
	Peek = 10
	Undo = 10
)

// Lexer produces a stream of Tokens from a source buffer. It keeps a small
// sliding window of materialized tokens around the cursor: up to Undo
// tokens behind it and up to Peek tokens ahead, lazily scanned and evicted
// as the cursor advances. The window is a trimmed slice rather than an
// indexed ring array, which is simpler to reason about while preserving the
// same bounded-lookahead, bounded-rewind contract.
type Lexer struct {
	file string
	src  string

	pos  int // byte offset of ch
	rpos int // byte offset of the next byte to read
	ch   byte

	line   int
	column int

	sink *errsink.Sink

	window []token.Token // materialized tokens; window[cur] is "current"
	cur    int
}

// New creates a Lexer over src, attributing positions to file in diagnostics.
// src need not be physically NUL-terminated; the Lexer treats reading past
// the end of src as an implicit NUL/EOF byte, matching the C original's
// zero-terminated buffer contract.
func New(file, src string, sink *errsink.Sink) *Lexer {
	l := &Lexer{
		file:   file,
		src:    src,
		line:   1,
		column: 0,
		sink:   sink,
	}
	l.readChar()
	l.window = []token.Token{l.scan()}
	return l
}

func (l *Lexer) readChar() {
	if l.rpos >= len(l.src) {
		l.ch = 0
		l.pos = l.rpos
		return
	}
	l.ch = l.src[l.rpos]
	l.pos = l.rpos
	l.rpos++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekByte() byte {
	if l.rpos >= len(l.src) {
		return 0
	}
	return l.src[l.rpos]
}

func (l *Lexer) peekByteN(n int) byte {
	idx := l.rpos + n - 1
	if idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

func (l *Lexer) here() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// Current returns the token the cursor currently sits on.
func (l *Lexer) Current() token.Token {
	return l.window[l.cur]
}

func (l *Lexer) ensure(idx int) {
	for len(l.window) <= idx {
		l.window = append(l.window, l.scan())
	}
}

// PeekN returns the token k positions ahead of the cursor (1 <= k <= Peek)
// without moving the cursor.
func (l *Lexer) PeekN(k int) token.Token {
	if k < 1 || k > Peek {
		l.sink.Fail(l.Current(), "lexer: peek(%d) exceeds window of %d", k, Peek)
	}
	l.ensure(l.cur + k)
	return l.window[l.cur+k]
}

// Next advances the cursor by one token and returns the new current token.
func (l *Lexer) Next() token.Token {
	l.cur++
	l.ensure(l.cur)
	l.evict()
	return l.Current()
}

// evict trims retained history down to at most Undo tokens behind the
// cursor, discarding anything further back, the same as invalidating the
// oldest ring slot would in a fixed-size ring buffer.
func (l *Lexer) evict() {
	if l.cur > Undo {
		drop := l.cur - Undo
		l.window = l.window[drop:]
		l.cur -= drop
	}
}

// Undo moves the cursor one token back. Fails if there is no retained
// history (the cursor is already at the oldest retained slot).
func (l *Lexer) Undo() token.Token {
	if l.cur == 0 {
		l.sink.Fail(l.Current(), "lexer: undo past start of retained window")
	}
	l.cur--
	return l.Current()
}

// Consume returns the current token, then advances.
func (l *Lexer) Consume() token.Token {
	t := l.Current()
	l.Next()
	return t
}

// Expect advances, then fails unless the new current token has kind k.
func (l *Lexer) Expect(k token.Kind) token.Token {
	t := l.Next()
	if t.Kind != k {
		l.sink.Fail(t, "expected %s, got %s", k, t.Kind)
	}
	return t
}

// Skip fails unless the current token has kind k, otherwise advances and
// returns the token that was skipped.
func (l *Lexer) Skip(k token.Kind) token.Token {
	t := l.Current()
	if t.Kind != k {
		l.sink.Fail(t, "expected %s, got %s", k, t.Kind)
	}
	l.Next()
	return t
}

// SkipKeyword fails unless the current token is an identifier whose lexeme
// equals the keyword k, otherwise advances.
func (l *Lexer) SkipKeyword(k token.Kind) token.Token {
	t := l.Current()
	if !t.IsKeyword(k) {
		l.sink.Fail(t, "expected keyword %s, got %s", k, t.Kind)
	}
	l.Next()
	return t
}

// File returns the file name this Lexer was constructed with.
func (l *Lexer) File() string { return l.file }

// CaptureRawUntilBrace consumes raw source text starting immediately after
// the current '{' token, stopping before the first '}' byte — no brace
// nesting is recognized, matching the C original's unescaped slice — and
// repositions the cursor just past that '}', discarding any stale
// lookahead. The caller must not have peeked past the current '{' before
// calling this: it is meant to be used the moment an asm function body
// opens.
func (l *Lexer) CaptureRawUntilBrace() string {
	cur := l.Current()
	if cur.Kind != token.LBRACE {
		l.sink.Fail(cur, "internal: CaptureRawUntilBrace called without '{' as the current token")
	}

	start := cur.Pos.Offset + 1
	idx := strings.IndexByte(l.src[start:], '}')
	if idx < 0 {
		l.sink.Fail(cur, "unterminated assembly body: no matching '}'")
	}
	closeOffset := start + idx
	body := l.src[start:closeOffset]

	for i := start; i <= closeOffset; i++ {
		if l.src[i] == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
	}

	l.pos = closeOffset + 1
	if l.pos < len(l.src) {
		l.ch = l.src[l.pos]
		l.rpos = l.pos + 1
	} else {
		l.ch = 0
		l.rpos = l.pos
	}

	l.window = []token.Token{l.scan()}
	l.cur = 0

	return body
}

// scan recognizes and returns the next token from the source, skipping
// whitespace. It never moves the logical cursor (the window manages that);
// it only advances the byte-level read position.
func (l *Lexer) scan() token.Token {
	l.skipWhitespace()

	pos := l.here()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Pos: pos}
	case isDigit(l.ch):
		return l.scanNumber(pos)
	case isIdentStart(l.ch):
		return l.scanIdentifier(pos)
	case l.ch == '"':
		return l.scanString(pos)
	case l.ch == '/' && l.peekByte() == '/':
		return l.scanComment(pos)
	default:
		return l.scanPunctuation(pos)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		if l.ch == '\r' && l.peekByte() == '\n' {
			l.readChar()
		}
		l.readChar()
	}
}

func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool { return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
func isIdentCont(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }

// upper normalizes a hex digit letter to uppercase by clearing bit 5 —
// ASCII 'a'..'f' and 'A'..'F' differ only in that bit.
func upper(ch byte) byte { return ch &^ 0x20 }

func hexVal(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case upper(ch) >= 'A' && upper(ch) <= 'F':
		return int(upper(ch)-'A') + 10, true
	}
	return 0, false
}

func (l *Lexer) scanNumber(pos token.Position) token.Token {
	start := l.pos

	if l.ch == '0' && (l.peekByte() == 'x' || l.peekByte() == 'X') {
		l.readChar()
		l.readChar()
		v, digitsStart := l.scanDigitRun(pos, 16)
		if l.pos == digitsStart {
			l.sink.Fail(token.Token{Pos: pos}, "malformed hex literal: no digits after 0x")
		}
		return token.Token{Kind: token.NUMBER, Lexeme: l.src[start:l.pos], Pos: pos, Number: v}
	}

	if l.ch == '0' && (l.peekByte() == 'b' || l.peekByte() == 'B') {
		l.readChar()
		l.readChar()
		v, digitsStart := l.scanDigitRun(pos, 2)
		if l.pos == digitsStart {
			l.sink.Fail(token.Token{Pos: pos}, "malformed binary literal: no digits after 0b")
		}
		return token.Token{Kind: token.NUMBER, Lexeme: l.src[start:l.pos], Pos: pos, Number: v}
	}

	if l.ch == '0' && (l.peekByte() == 'o' || l.peekByte() == 'O') {
		l.readChar()
		l.readChar()
		v, digitsStart := l.scanDigitRun(pos, 8)
		if l.pos == digitsStart {
			l.sink.Fail(token.Token{Pos: pos}, "malformed octal literal: no digits after 0o")
		}
		return token.Token{Kind: token.NUMBER, Lexeme: l.src[start:l.pos], Pos: pos, Number: v}
	}

	if l.ch == '0' && isDigit(l.peekByte()) {
		l.sink.Fail(token.Token{Pos: pos}, "a non-zero decimal digit must not follow a leading 0; use 0x/0b/0o for a base prefix")
	}

	v, _ := l.scanDigitRun(pos, 10)
	return token.Token{Kind: token.NUMBER, Lexeme: l.src[start:l.pos], Pos: pos, Number: v}
}

// digitValue reports ch's value as a digit and whether ch is shaped like a
// digit at all for the given base: '0'-'9' always, plus 'a'-'f'/'A'-'F'
// when base is 16. It does not check the value against base itself — that
// is scanDigitRun's job — so a character that is merely the wrong shape
// for the base (e.g. 'a' following a decimal literal) ends the digit run
// instead of failing.
func digitValue(ch byte, base int) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case base == 16:
		return hexVal(ch)
	default:
		return 0, false
	}
}

// scanDigitRun consumes a run of digits in the given base, returning the
// accumulated value and the byte offset the run started at (so the caller
// can detect a zero-length run). A digit shaped right for the base but
// whose value is not within it — '9' in a binary literal, '8' in an octal
// one — is a lexical error, not the end
// of the token: `0b19` must fail to lex rather than silently produce two
// valid tokens (confirmed against original_source/source/lexer.c's
// char_to_number, which aborts the moment a digit's value reaches the
// base). Hex's digit class already tops out at 15 and plain decimal's at
// 9, both under their own base, so the check never actually fires for
// those two; it is load-bearing only for 0b/0o.
func (l *Lexer) scanDigitRun(pos token.Position, base int) (uint64, int) {
	digitsStart := l.pos
	var v uint64
	for {
		d, ok := digitValue(l.ch, base)
		if !ok {
			break
		}
		if d >= base {
			l.sink.Fail(token.Token{Pos: pos}, "digit %s exceeds base %d", quoteByte(l.ch), base)
		}
		v = v*uint64(base) + uint64(d)
		l.readChar()
	}
	return v, digitsStart
}

func (l *Lexer) scanIdentifier(pos token.Position) token.Token {
	start := l.pos
	for isIdentCont(l.ch) {
		l.readChar()
	}
	return token.Token{Kind: token.IDENTIFIER, Lexeme: l.src[start:l.pos], Pos: pos}
}

func (l *Lexer) scanString(pos token.Position) token.Token {
	l.readChar() // consume opening quote
	start := l.pos
	for l.ch != '"' {
		if l.ch == 0 {
			l.sink.Fail(token.Token{Pos: pos}, "unterminated string literal")
		}
		l.readChar()
	}
	lexeme := l.src[start:l.pos]
	l.readChar() // consume closing quote
	return token.Token{Kind: token.STRING, Lexeme: lexeme, Pos: pos}
}

// scanComment handles both "// line" comments and nesting "//( block //)"
// comments. Both are emitted as COMMENT tokens so the parser
// can attach them to the tree.
func (l *Lexer) scanComment(pos token.Position) token.Token {
	start := l.pos
	l.readChar() // first /
	l.readChar() // second /

	if l.ch == '(' {
		depth := 1
		l.readChar()
		for depth > 0 {
			if l.ch == 0 {
				l.sink.Fail(token.Token{Pos: pos}, "unterminated block comment")
			}
			if l.ch == '/' && l.peekByte() == '/' && l.peekByteN(2) == '(' {
				depth++
				l.readChar()
				l.readChar()
				l.readChar()
				continue
			}
			if l.ch == '/' && l.peekByte() == '/' && l.peekByteN(2) == ')' {
				depth--
				l.readChar()
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
		}
		return token.Token{Kind: token.COMMENT, Lexeme: l.src[start:l.pos], Pos: pos}
	}

	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return token.Token{Kind: token.COMMENT, Lexeme: l.src[start:l.pos], Pos: pos}
}

// digraphs is checked before falling back to single-character punctuation,
// giving longest-match behavior.
var digraphs = map[[2]byte]token.Kind{
	{'=', '='}: token.EQUAL_EQUAL,
	{'!', '='}: token.NOT_EQUAL,
	{'<', '='}: token.LESS_EQUAL,
	{'>', '='}: token.GREATER_EQUAL,
	{':', ':'}: token.COLON_COLON,
	{'-', '>'}: token.ARROW,
	{'.', '.'}: token.DOTDOT,
}

var singles = map[byte]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'<': token.LESS,
	'>': token.GREATER,
	'=': token.ASSIGN,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	'.': token.DOT,
	';': token.SEMICOLON,
	':': token.COLON,
	',': token.COMMA,
	'^': token.CARET,
	'&': token.AMP,
	'@': token.AT,
}

func (l *Lexer) scanPunctuation(pos token.Position) token.Token {
	start := l.pos
	pair := [2]byte{l.ch, l.peekByte()}
	if kind, ok := digraphs[pair]; ok {
		l.readChar()
		l.readChar()
		return token.Token{Kind: kind, Lexeme: l.src[start:l.pos], Pos: pos}
	}
	if kind, ok := singles[l.ch]; ok {
		l.readChar()
		return token.Token{Kind: kind, Lexeme: l.src[start:l.pos], Pos: pos}
	}
	l.sink.Fail(token.Token{Pos: pos}, "unexpected character %s", quoteByte(l.ch))
	panic("unreachable")
}

func quoteByte(ch byte) string {
	if ch >= 0x20 && ch < 0x7f {
		return fmt.Sprintf("%q", string(ch))
	}
	return fmt.Sprintf("0x%02x", ch)
}

// Package errsink implements the compiler's single fail-fast error
// reporter: it renders source context around a token and
// terminates the process. The core never recovers from a reported error.
package errsink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luxlang/luxc/internal/token"
)

// contextLines is how many preceding source lines are rendered above the
// offending line.
const contextLines = 3

// Sink renders and reports fatal compiler errors for one source file.
//
// Fail terminates the process by default (os.Exit(1)), matching the core's
// "fail fast, never recover" contract. Tests construct a
// Sink with Panic set so a recover() can observe the rendered message
// without killing the test binary.
type Sink struct {
	File   string
	Source string
	Out    io.Writer

	// Panic, when true, makes Fail panic with the rendered message instead
	// of calling os.Exit. Used only by tests.
	Panic bool
}

// New creates a Sink that renders diagnostics against source, attributing
// them to file, writing to os.Stderr.
func New(file, source string) *Sink {
	return &Sink{File: file, Source: source, Out: os.Stderr}
}

// Fail renders a source-located, caret-annotated message for tok and
// terminates. It never returns.
func (s *Sink) Fail(tok token.Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	rendered := s.render(tok, msg)

	if s.Panic {
		panic(rendered)
	}

	fmt.Fprintln(s.Out, rendered)
	os.Exit(1)
}

func (s *Sink) render(tok token.Token, msg string) string {
	var b strings.Builder

	if s.File != "" {
		fmt.Fprintf(&b, "%s:%d:%d: error: %s\n", s.File, tok.Pos.Line, tok.Pos.Column, msg)
	} else {
		fmt.Fprintf(&b, "%d:%d: error: %s\n", tok.Pos.Line, tok.Pos.Column, msg)
	}

	lines := strings.Split(s.Source, "\n")
	lineIdx := tok.Pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return b.String()
	}

	first := lineIdx - contextLines
	if first < 0 {
		first = 0
	}

	for i := first; i <= lineIdx; i++ {
		fmt.Fprintf(&b, "%5d | %s\n", i+1, lines[i])
	}

	gutter := "      | "
	col := tok.Pos.Column
	if col < 1 {
		col = 1
	}
	caretLine := strings.Repeat(" ", col-1) + "^"
	if width := len(tok.Lexeme); width > 1 {
		caretLine += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(&b, "%s%s\n", gutter, caretLine)

	return b.String()
}

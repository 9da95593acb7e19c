// Package buffer implements an amortized-growth byte buffer used to stage
// the `.data` segment so the emitter can interleave generated code and
// accumulated string/global data for each function.
//
// A hand-rolled growable array would just reimplement what bytes.Buffer
// already does, so Buffer wraps it rather than reinventing doubling growth
// (see DESIGN.md for why it is built on the standard library rather than a
// third-party dependency).
package buffer

import (
	"bytes"
	"fmt"
)

// Buffer is an append-only byte accumulator with amortized-doubling growth.
type Buffer struct {
	buf bytes.Buffer
}

// New returns an empty Buffer.
func New() *Buffer { return &Buffer{} }

// AppendString appends s verbatim — lux has no escape processing to apply.
func (b *Buffer) AppendString(s string) {
	b.buf.WriteString(s)
}

// AppendFormat appends a printf-style formatted string.
func (b *Buffer) AppendFormat(format string, args ...any) {
	fmt.Fprintf(&b.buf, format, args...)
}

// Len returns the number of bytes currently staged.
func (b *Buffer) Len() int { return b.buf.Len() }

// Bytes returns the staged bytes without consuming them.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Reset empties the buffer, e.g. once the emitter has flushed it to the
// output file's `.data` section.
func (b *Buffer) Reset() { b.buf.Reset() }

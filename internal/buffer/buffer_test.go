package buffer

import "testing"

func TestAppendStringAndFormat(t *testing.T) {
	b := New()
	b.AppendString("hello ")
	b.AppendFormat("%s %d", "world", 42)

	want := "hello world 42"
	if got := string(b.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
	if b.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(want))
	}
}

func TestReset(t *testing.T) {
	b := New()
	b.AppendString("staged")
	b.Reset()

	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
	if got := string(b.Bytes()); got != "" {
		t.Errorf("Bytes() after Reset = %q, want empty", got)
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Errorf("a fresh Buffer's Len() = %d, want 0", b.Len())
	}
}

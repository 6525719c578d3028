package kgrams

import "testing"

func TestCircularBuffer(t *testing.T) {
	b := NewCircularBuffer(3, "")
	for i, v := range []string{"", "", ""} {
		if got := b.Read(); got != v {
			t.Fatalf("slot %d: expected %q, got %q", i, v, got)
		}
		b.LShift()
	}

	b = NewCircularBuffer(3, "x")
	b.Write("a")
	b.LShift()
	b.Write("b")
	b.LShift()
	b.Write("c")
	b.LShift() // wraps back to slot 0
	if got := b.Read(); got != "a" {
		t.Errorf("expected wraparound to slot 0 = %q, got %q", "a", got)
	}
	b.RShift()
	if got := b.Read(); got != "c" {
		t.Errorf("expected RShift to slot 2 = %q, got %q", "c", got)
	}
}

func TestCircularBufferCopyIsIndependent(t *testing.T) {
	b := NewCircularBuffer(2, "")
	b.Write("orig")
	c := b.Copy()
	c.Write("copy")
	if got := b.Read(); got != "orig" {
		t.Errorf("mutating the copy affected the original: got %q", got)
	}
	if got := c.Read(); got != "copy" {
		t.Errorf("expected copy's own write to stick, got %q", got)
	}
}

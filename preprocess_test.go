package kgrams

import (
	"regexp"
	"testing"
)

func TestPreprocessorDefaultErase(t *testing.T) {
	p := NewPreprocessor(nil, false)
	got := p.Process("Hello, World! #tag$")
	want := "Hello World! tag"
	if got != want {
		t.Errorf("Process(...) = %q, want %q", got, want)
	}
}

func TestPreprocessorLowerCase(t *testing.T) {
	p := NewPreprocessor(nil, true)
	if got := p.Process("Hello World."); got != "hello world." {
		t.Errorf("Process(...) = %q, want %q", got, "hello world.")
	}
}

func TestPreprocessorCustomErase(t *testing.T) {
	p := NewPreprocessor(regexp.MustCompile(`[0-9]`), false)
	if got := p.Process("a1b2c3"); got != "abc" {
		t.Errorf("Process(...) = %q, want %q", got, "abc")
	}
}

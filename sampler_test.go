package kgrams

import (
	"math/rand"
	"strings"
	"testing"
)

func TestSampleWordNeverUNK(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b a", "b a b"}, false)
	m, err := NewML(f, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSampler[*ML](m, rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		w := s.SampleWord("a", 1.0)
		if w == UNKTok {
			t.Fatalf("SampleWord returned UNK")
		}
	}
}

// TestSampleWordDeterministicWhenUnambiguous builds a model where "a" has
// exactly one possible successor ("b"; every other candidate, including
// EOS, has probability exactly zero). Gumbel-Max scores a zero
// probability as zero regardless of the RNG draw, so the single
// positive-probability candidate must win for any seed and temperature.
func TestSampleWordDeterministicWhenUnambiguous(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b"}, false)
	m, err := NewML(f, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, seed := range []int64{1, 2, 3, 99} {
		s := NewSampler[*ML](m, rand.New(rand.NewSource(seed)))
		if got := s.SampleWord("a", 1.0); got != "b" {
			t.Errorf("seed %d: SampleWord(\"a\", 1.0) = %q, want %q", seed, got, "b")
		}
	}
}

func TestSampleSentenceTerminatesAndNoBOS(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b a", "b a b"}, false)
	m, err := NewML(f, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSampler[*ML](m, rand.New(rand.NewSource(42)))
	sentence := s.SampleSentence(5, 1.0)
	if strings.Contains(sentence, BOSTok) {
		t.Errorf("sampled sentence should never contain BOS padding: %q", sentence)
	}
	if !strings.Contains(sentence, "<eos>") && !strings.Contains(sentence, "truncated") {
		t.Errorf("sampled sentence should be tagged with <eos> or a truncation marker: %q", sentence)
	}
}

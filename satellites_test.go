package kgrams

import "testing"

func TestRFreqsExcludesBOSSuffix(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b a"}, false)
	r := NewRFreqs(f)

	// R[0][""] counts distinct unigrams that are not BOS: a, b, EOS.
	if got := r.At(0, ""); got != 3 {
		t.Errorf("R[0][\"\"] = %d, want 3", got)
	}
}

func TestRFreqsRebuildsAfterUpdate(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b"}, false)
	r := NewRFreqs(f)
	before := r.At(0, "")
	f.ProcessSentences([]string{"a c"}, false)
	after := r.At(0, "")
	if after <= before {
		t.Errorf("expected satellite to grow after ingesting a new word: before=%d after=%d", before, after)
	}
}

func TestKNFreqsContinuationCounts(t *testing.T) {
	f := NewKgramFreqs(3)
	f.ProcessSentences([]string{"a b a b a"}, false)
	kf := NewKNFreqs(f)

	// Padded sequence is BOS BOS a b a b a EOS. Distinct word types
	// preceding "a" are {BOS, b}; distinct word types following "a"
	// are {b, EOS}.
	aCode := f.Index("a")
	if got := kf.lAt(1, aCode); got != 2 {
		t.Errorf("L[1][a] = %d, want 2", got)
	}
	if got := kf.rAt(1, aCode); got != 2 {
		t.Errorf("R[1][a] = %d, want 2", got)
	}
}

func TestMKNFreqsBuckets(t *testing.T) {
	f := NewKgramFreqs(3)
	f.ProcessSentences([]string{"a b a b a"}, false)
	mf := NewMKNFreqs(f)

	r1, r2, r3 := mf.rBuckets(0, true, "")
	if total := r1 + r2 + r3; total == 0 {
		t.Errorf("expected nonzero bucketed unigram R counts")
	}
}

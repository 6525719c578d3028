package kgrams

import "testing"

// TestKgramFreqsS1 ingests "a b a" at order 2 and checks every count
// table entry named in scenario S1.
func TestKgramFreqsS1(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b a"}, false)

	if got := f.TotWords(); got != 4 {
		t.Errorf("expected F[0][\"\"] = 4, got %d", got)
	}

	for _, c := range []struct {
		kgram string
		want  int
	}{
		{"a", 2},
		{"b", 1},
		{BOSTok, 1},
		{EOSTok, 1},
	} {
		if got := f.Query(c.kgram); got != c.want {
			t.Errorf("F[1][%q] = %d, want %d", c.kgram, got, c.want)
		}
	}

	for _, c := range []struct {
		kgram string
		want  int
	}{
		{BOSTok + " a", 1},
		{"a b", 1},
		{"b a", 1},
		{"a " + EOSTok, 1},
	} {
		if got := f.Query(c.kgram); got != c.want {
			t.Errorf("F[2][%q] = %d, want %d", c.kgram, got, c.want)
		}
	}
}

func TestKgramFreqsBOSPaddingAndCumulative(t *testing.T) {
	f := NewKgramFreqs(3)
	sentences := []string{"a b a", "b a b"}
	f.ProcessSentences(sentences, false)

	for k := 1; k < 3; k++ {
		pad := ""
		for i := 0; i < k; i++ {
			if i > 0 {
				pad += " "
			}
			pad += BOSTok
		}
		if got := f.Query(pad); got != len(sentences) {
			t.Errorf("F[%d][BOS^%d] = %d, want %d", k, k, got, len(sentences))
		}
	}

	before := f.Query("a b")
	f.ProcessSentences(sentences, false)
	if got := f.Query("a b"); got != 2*before {
		t.Errorf("expected repeated ProcessSentences to double counts: got %d, want %d", got, 2*before)
	}
}

func TestKgramFreqsQueryOutOfRange(t *testing.T) {
	f := NewKgramFreqs(1)
	f.ProcessSentences([]string{"a b"}, false)
	if got := f.Query("a b"); got != 0 {
		t.Errorf("expected Query beyond N to return 0, got %d", got)
	}
}

func TestKgramFreqsUnique(t *testing.T) {
	f := NewKgramFreqs(2)
	f.ProcessSentences([]string{"a b a"}, false)
	if _, err := f.Unique(3); err == nil {
		t.Errorf("expected OutOfRange error for k > N")
	}
	if n, err := f.Unique(1); err != nil || n == 0 {
		t.Errorf("expected a positive unique count for k=1, got %d, err %v", n, err)
	}
}

func TestKgramFreqsFixedDictionary(t *testing.T) {
	f := NewKgramFreqsFromWords(2, []string{"a", "b"})
	f.ProcessSentences([]string{"a c"}, true)
	if f.DictContains("c") {
		t.Errorf("expected fixed dictionary to reject new words")
	}
	if got := f.Index("c"); got != UNKInd {
		t.Errorf("expected unseen word under fixed dictionary to map to UNK, got %q", got)
	}
}

package kgrams

import "testing"

func TestDictionaryInsertRoundTrip(t *testing.T) {
	d := NewDictionary()
	for _, w := range []string{"a", "b", "a", "c"} {
		d.Insert(w)
	}
	for _, w := range []string{"a", "b", "c"} {
		if !d.Contains(w) {
			t.Errorf("expected dictionary to contain %q", w)
		}
		if got := d.Word(d.Index(w)); got != w {
			t.Errorf("round-trip failed for %q: got %q", w, got)
		}
	}
	if got := d.Length(); got != 3 {
		t.Errorf("expected Length() = 3, got %d", got)
	}
}

func TestDictionarySpecialTokens(t *testing.T) {
	d := NewDictionary()
	if !d.Contains(BOSTok) || !d.Contains(EOSTok) {
		t.Errorf("expected BOS and EOS to be contained by construction")
	}
	if d.Contains(UNKTok) {
		t.Errorf("expected UNK to not be reported as contained")
	}
	if got := d.Index(BOSTok); got != BOSInd {
		t.Errorf("expected Index(BOS) = %q, got %q", BOSInd, got)
	}
	if got := d.Index(EOSTok); got != EOSInd {
		t.Errorf("expected Index(EOS) = %q, got %q", EOSInd, got)
	}
	if got := d.Index("never seen"); got != UNKInd {
		t.Errorf("expected Index of unseen word = %q, got %q", UNKInd, got)
	}
	if got := d.Word("999"); got != UNKTok {
		t.Errorf("expected Word of unseen index = %q, got %q", UNKTok, got)
	}
}

func TestDictionaryInsertIdempotent(t *testing.T) {
	d := NewDictionary()
	d.Insert("a")
	i1 := d.Index("a")
	d.Insert("a")
	if i2 := d.Index("a"); i1 != i2 {
		t.Errorf("re-inserting a known word changed its index: %q -> %q", i1, i2)
	}
	if d.Length() != 1 {
		t.Errorf("expected Length() = 1 after duplicate insert, got %d", d.Length())
	}
}

func TestDictionaryKgramCode(t *testing.T) {
	d := NewDictionaryFromWords([]string{"a", "b"})
	k, code := d.KgramCode("a b a")
	if k != 3 {
		t.Errorf("expected k = 3, got %d", k)
	}
	want := d.Index("a") + " " + d.Index("b") + " " + d.Index("a")
	if code != want {
		t.Errorf("expected code %q, got %q", want, code)
	}

	k, code = d.KgramCode("a " + EOSTok + " b")
	if k != 3 {
		t.Errorf("expected a literal EOS to be encoded as a word, got k = %d", k)
	}
	want = d.Index("a") + " " + EOSInd + " " + d.Index("b")
	if code != want {
		t.Errorf("expected code %q, got %q", want, code)
	}
}

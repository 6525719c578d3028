package kgrams

import (
	"strings"

	"github.com/golang/glog"
)

// Satellite is a derived table kept in sync with a KgramFreqs' counts.
// Update is called once after every ProcessSentences call and is free to
// rebuild its internal state from scratch by reading the owning
// KgramFreqs' tables.
type Satellite interface {
	update()
}

// KgramFreqs stores k-gram frequency counts, for orders 0 through N, in
// a slice of hash tables keyed by k-gram code. It owns the model's
// Dictionary and drives a registry of Satellites (continuation-count
// tables) that must be refreshed after every mutation and before any
// smoother query.
type KgramFreqs struct {
	n       int
	freqs   []map[string]int
	dict    *Dictionary
	padding *CircularBuffer[string]

	satellites []Satellite
}

// NewKgramFreqs returns an empty model of the given maximum order N,
// with an empty Dictionary.
func NewKgramFreqs(n int) *KgramFreqs {
	if n <= 0 {
		glog.Fatalf("kgrams: order N must be positive, got %d", n)
	}
	f := &KgramFreqs{
		n:     n,
		freqs: make([]map[string]int, n+1),
		dict:  NewDictionary(),
	}
	for k := range f.freqs {
		f.freqs[k] = make(map[string]int)
	}
	f.freqs[0][""] = 0
	f.padding = f.generatePadding()
	return f
}

// NewKgramFreqsFromWords returns an empty model of the given maximum
// order N, with a Dictionary pre-seeded from words.
func NewKgramFreqsFromWords(n int, words []string) *KgramFreqs {
	f := NewKgramFreqs(n)
	f.dict = NewDictionaryFromWords(words)
	return f
}

// NewKgramFreqsFromDictionary returns an empty model of the given
// maximum order N, sharing the given Dictionary.
func NewKgramFreqsFromDictionary(n int, dict *Dictionary) *KgramFreqs {
	f := NewKgramFreqs(n)
	f.dict = dict
	return f
}

// generatePadding builds the (N-1)-length BOS padding buffer shared as
// the starting prefix for every sentence.
func (f *KgramFreqs) generatePadding() *CircularBuffer[string] {
	buf := NewCircularBuffer(f.n, "")
	for k := 0; k < f.n; k++ {
		padding := strings.Repeat(BOSInd+" ", k)
		buf.Write(padding)
		buf.LShift()
	}
	return buf
}

// AddSatellite registers s to be refreshed after every ProcessSentences
// call. s must not outlive f.
func (f *KgramFreqs) AddSatellite(s Satellite) {
	f.satellites = append(f.satellites, s)
}

func (f *KgramFreqs) updateSatellites() {
	for _, s := range f.satellites {
		s.update()
	}
}

// ProcessSentences ingests sentences, incrementing the BOS-padding
// counts F[1..N-1][BOS^k] by len(sentences), processing each sentence in
// turn, and finally refreshing every registered satellite exactly once.
// When fixedDictionary is false, previously unseen words are added to
// the dictionary; otherwise they are mapped to the UNK code. Repeated
// calls are cumulative: counts accumulate across calls rather than being
// recomputed from scratch.
func (f *KgramFreqs) ProcessSentences(sentences []string, fixedDictionary bool) {
	for k := 1; k < f.n; k++ {
		padding := strings.TrimRight(strings.Repeat(BOSInd+" ", k), " ")
		f.freqs[k][padding] += len(sentences)
	}
	padding := f.padding.Copy()
	for _, sentence := range sentences {
		f.processSentence(sentence, padding.Copy(), fixedDictionary)
	}
	f.updateSatellites()
}

// processSentence accumulates counts for a single sentence into f,
// using prefixes (a private copy of the BOS padding buffer) to hold the
// rolling context as words are consumed.
func (f *KgramFreqs) processSentence(sentence string, prefixes *CircularBuffer[string], fixedDictionary bool) {
	stream := NewWordStream(sentence)
	for !stream.EOS() {
		f.freqs[0][""]++
		current := stream.PopWord()
		if !f.dict.Contains(current) && !fixedDictionary {
			f.dict.Insert(current)
		}
		code := f.dict.Index(current)

		for k := 1; k <= f.n; k++ {
			prefix := prefixes.Read()
			f.freqs[k][prefix+code]++
			prefixes.Write(prefix + code + " ")
			prefixes.LShift()
		}
		// Discard the spurious N-word prefix whose last slot is the
		// word just inserted.
		prefixes.RShift()
		prefixes.Write("")
	}
}

// Query returns the count of a raw k-gram string, 0 if its order exceeds
// N or if it was never observed.
func (f *KgramFreqs) Query(kgram string) int {
	k, code := f.dict.KgramCode(kgram)
	if k > f.n {
		return 0
	}
	return f.freqs[k][code]
}

// DictContains reports whether word is in the model's dictionary.
func (f *KgramFreqs) DictContains(word string) bool { return f.dict.Contains(word) }

// Word returns the word for an index code.
func (f *KgramFreqs) Word(index string) string { return f.dict.Word(index) }

// Index returns the index code for a word.
func (f *KgramFreqs) Index(word string) string { return f.dict.Index(word) }

// KgramCode returns (k, code) for a raw k-gram string, see
// Dictionary.KgramCode.
func (f *KgramFreqs) KgramCode(kgram string) (int, string) { return f.dict.KgramCode(kgram) }

// N returns the maximum k-gram order this model can store.
func (f *KgramFreqs) N() int { return f.n }

// V returns the dictionary size, excluding BOS/EOS/UNK.
func (f *KgramFreqs) V() int { return f.dict.Length() }

// TotWords returns the total number of words observed (EOS and UNK
// count, BOS padding does not).
func (f *KgramFreqs) TotWords() int { return f.freqs[0][""] }

// Unique returns the number of distinct k-grams of order k observed so
// far. Fails with OutOfRange if k > N.
func (f *KgramFreqs) Unique(k int) (int, error) {
	if k > f.n {
		return 0, newError(OutOfRange, "k=%d exceeds maximum order N=%d", k, f.n)
	}
	return len(f.freqs[k]), nil
}

// Table returns the raw count table for order k, for satellites to scan.
// The returned map must not be mutated by callers.
func (f *KgramFreqs) Table(k int) map[string]int { return f.freqs[k] }

// Dictionary returns the model's Dictionary.
func (f *KgramFreqs) Dictionary() *Dictionary { return f.dict }

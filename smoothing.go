package kgrams

import (
	"math"
	"strings"
)

// Smoother is the capability set the Sampler (and Score) need from a
// conditional word-probability model: the raw probability function, the
// dictionary size, word lookup by index, and the length of the BOS
// padding a caller should prepend before the first real word. Any
// concrete smoother type satisfies this without inheriting from a common
// base class.
type Smoother interface {
	// Prob returns P(word | context), or UndefinedProb if undefined.
	Prob(word, context string) float64
	// V returns the dictionary size (excluding BOS/EOS/UNK).
	V() int
	// Word returns the word for a dictionary index code.
	Word(index string) string
	// PaddingLen returns the number of BOS tokens that precede the
	// first real word of a sentence for this smoother's order.
	PaddingLen() int
}

// smootherBase is the shared state and shared helpers ported from the
// common Smoother base class of the original implementation: a
// reference to the backing KgramFreqs, an effective order, and the word
// context truncation/backoff used by every concrete smoother.
type smootherBase struct {
	f *KgramFreqs
	n int // effective order, N_eff <= f.N()
}

// newSmootherBase validates n against f's order and returns a bound
// base. n <= 0 or n > f.N() fails with OutOfRange.
func newSmootherBase(f *KgramFreqs, n int) (smootherBase, error) {
	if n <= 0 || n > f.N() {
		return smootherBase{}, newError(OutOfRange,
			"smoother order %d out of range (must be in [1, %d])", n, f.N())
	}
	return smootherBase{f: f, n: n}, nil
}

func (b smootherBase) N() int { return b.n }
func (b smootherBase) V() int { return b.f.V() }

func (b smootherBase) Word(index string) string { return b.f.Word(index) }

func (b smootherBase) PaddingLen() int { return b.n - 1 }

func (b smootherBase) padding() string {
	return strings.TrimRight(strings.Repeat(BOSTok+" ", b.n-1), " ")
}

// setN validates and updates the effective order, as every smoother's
// SetN method does.
func (b *smootherBase) setN(n int) error {
	if n <= 0 || n > b.f.N() {
		return newError(OutOfRange,
			"smoother order %d out of range (must be in [1, %d])", n, b.f.N())
	}
	b.n = n
	return nil
}

// truncate keeps only the last k-1 whitespace-separated words of
// context, character-exact (it does not normalize internal spacing),
// ported from the original Smoother::truncate index arithmetic.
func truncate(context string, k int) string {
	if k <= 1 {
		return ""
	}
	nWords := 0
	start := len(context) - 1
	for nWords < k-1 {
		s := lastIndexNotOf(context, ' ', start)
		if s < 0 || s == 0 {
			return context
		}
		start = lastIndexOf(context, ' ', s)
		if start < 0 || start == 0 {
			return context
		}
		nWords++
	}
	return context[start:]
}

// backoffWords drops the first whitespace-separated word from a
// word-level (not k-gram-code) context string, as used by Stupid
// Backoff's recursive peeling.
func backoffWords(context string) string {
	pos := indexFirstNonSpace(context, 0)
	if pos < 0 {
		return ""
	}
	pos = indexFirstSpace(context, pos)
	if pos < 0 {
		return ""
	}
	if indexFirstNonSpace(context, pos) < 0 {
		return ""
	}
	return context[pos:]
}

func lastIndexNotOf(s string, c byte, from int) int {
	if from >= len(s) {
		from = len(s) - 1
	}
	for i := from; i >= 0; i-- {
		if s[i] != c {
			return i
		}
	}
	return -1
}

func lastIndexOf(s string, c byte, from int) int {
	if from >= len(s) {
		from = len(s) - 1
	}
	for i := from; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// Score computes the probability (or, if log is true, the
// log-probability) of an entire sentence under s, plus the number of
// words scored including the trailing EOS. The context window starts at
// s's BOS padding and slides one word at a time; any explicit BOS token
// appearing in the sentence text is skipped rather than scored (it does
// not slide into the context either). A word whose probability is
// undefined contributes UndefinedProb, which yields a NaN log-probability
// contribution in log mode.
func Score(s Smoother, sentence string, log bool) (float64, int) {
	context := strings.TrimRight(strings.Repeat(BOSTok+" ", s.PaddingLen()), " ")
	score := 1.0
	if log {
		score = 0
	}
	nWords := 0
	stream := NewWordStream(sentence)
	order := s.PaddingLen() + 1
	for {
		word := stream.PopWord()
		if stream.EOS() {
			break
		}
		if word == BOSTok {
			continue
		}
		p := s.Prob(word, context)
		if log {
			score += math.Log(p)
		} else {
			score *= p
		}
		nWords++
		context = truncate(context+" "+word, order)
	}
	p := s.Prob(EOSTok, context)
	if log {
		score += math.Log(p)
	} else {
		score *= p
	}
	nWords++
	return score, nWords
}

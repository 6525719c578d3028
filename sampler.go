package kgrams

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Sampler draws words and sentences from a Smoother's distribution
// using the Gumbel-Max trick: for each candidate, p^(1/T) is divided by
// an independent unit-exponential draw, and the candidate with the
// largest resulting score wins. This samples exactly from the
// temperature-T-tilted distribution without ever normalizing it.
type Sampler[S Smoother] struct {
	prob S
	rng  *rand.Rand
}

// NewSampler returns a Sampler drawing from prob's distribution. If rng
// is nil, a source seeded from the package-level math/rand generator is
// used.
func NewSampler[S Smoother](prob S, rng *rand.Rand) *Sampler[S] {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Sampler[S]{prob, rng}
}

// SampleWord draws one word from P(.|context), at temperature T (the
// standard distribution when T = 1; T < 1 sharpens it towards the
// mode, T > 1 flattens it). UNK is never returned.
func (s *Sampler[S]) SampleWord(context string, T float64) string {
	best := 0.0
	res := ""
	v := s.prob.V()
	for i := 1; i <= v; i++ {
		index := strconv.Itoa(i)
		word := s.prob.Word(index)
		tmp := math.Pow(s.prob.Prob(word, context), 1/T) / s.rng.ExpFloat64()
		if tmp > best {
			best = tmp
			res = word
		}
	}
	tmp := math.Pow(s.prob.Prob(EOSTok, context), 1/T) / s.rng.ExpFloat64()
	if tmp > best {
		res = EOSTok
	}
	return res
}

// SampleSentence draws a whole sentence at temperature T, stopping at
// EOS or after maxLength words, whichever comes first.
func (s *Sampler[S]) SampleSentence(maxLength int, T float64) string {
	context := strings.TrimRight(strings.Repeat(BOSTok+" ", s.prob.PaddingLen()), " ")
	var res strings.Builder
	for n := 0; n < maxLength; n++ {
		word := s.SampleWord(context, T)
		if word == EOSTok {
			res.WriteString("<eos>")
			return res.String()
		}
		res.WriteString(word)
		res.WriteString(" ")
		context = backoffWords(appendWord(context, word))
	}
	res.WriteString("[...] (truncated output)")
	return res.String()
}

package kgrams

// WB is the Witten-Bell smoother. It weighs the maximum-likelihood
// estimate at each context order against its backoff by the number of
// distinct words the context was observed to continue with, recursing
// word by word down to a uniform floor at the empty context.
type WB struct {
	smootherBase
	rf *RFreqs
}

// NewWB returns a Witten-Bell smoother of order n over f.
func NewWB(f *KgramFreqs, n int) (*WB, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	return &WB{base, NewRFreqs(f)}, nil
}

// SetN updates the effective order.
func (w *WB) SetN(n int) error { return w.setN(n) }

// Prob returns the Witten-Bell conditional probability of word given
// context, truncated to the smoother's order.
func (w *WB) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	return w.recurse(word, truncate(context, w.n))
}

// recurse implements P(w|c) = (F(c,w) + R(c)*P(w|c--)) / (F(c) + R(c)),
// falling back to the backoff probability outright when the denominator
// is zero, and bottoming out in a uniform floor at the empty context.
func (w *WB) recurse(word, context string) float64 {
	var lower float64
	if context == "" {
		lower = 1.0 / float64(w.V()+2)
	} else {
		lower = w.recurse(word, backoffWords(context))
	}
	order, code := w.f.KgramCode(context)
	rCount := float64(w.rf.At(order, code))
	num := float64(w.f.Query(appendWord(context, word))) + rCount*lower
	den := float64(w.f.Query(context)) + rCount
	if den == 0 {
		return lower
	}
	return num / den
}

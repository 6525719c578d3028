package kgrams

// ML is the Maximum-Likelihood smoother: P(w|c) = F(c w) / F(c), with no
// discounting or backoff. Undefined on an unseen context or when word is
// BOS or blank.
type ML struct {
	smootherBase
}

// NewML returns an ML smoother of order n over f.
func NewML(f *KgramFreqs, n int) (*ML, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	return &ML{base}, nil
}

// SetN updates the effective order.
func (m *ML) SetN(n int) error { return m.setN(n) }

// Prob returns the Maximum-Likelihood conditional probability of word
// given context, truncated to the smoother's order.
func (m *ML) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	context = truncate(context, m.n)
	den := m.f.Query(context)
	if den == 0 {
		return UndefinedProb
	}
	return float64(m.f.Query(appendWord(context, word))) / float64(den)
}

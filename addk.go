package kgrams

// AddK is the Add-k (Laplace-style) smoother:
// P(w|c) = (F(c w) + k) / (F(c) + k*(V+2)).
type AddK struct {
	smootherBase
	k float64
}

// NewAddK returns an Add-k smoother of order n over f, with constant k.
// k must be strictly positive.
func NewAddK(f *KgramFreqs, n int, k float64) (*AddK, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, newError(OutOfRange, "k must be positive, got %g", k)
	}
	return &AddK{base, k}, nil
}

// K returns the add-k constant.
func (a *AddK) K() float64 { return a.k }

// SetK updates the add-k constant. Fails with OutOfRange if k <= 0.
func (a *AddK) SetK(k float64) error {
	if k <= 0 {
		return newError(OutOfRange, "k must be positive, got %g", k)
	}
	a.k = k
	return nil
}

// SetN updates the effective order.
func (a *AddK) SetN(n int) error { return a.setN(n) }

// Prob returns the Add-k conditional probability of word given context.
func (a *AddK) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	context = truncate(context, a.n)
	num := float64(a.f.Query(appendWord(context, word))) + a.k
	den := float64(a.f.Query(context)) + a.k*float64(a.V()+2)
	return num / den
}

package kgrams

// Abs is the Absolute Discount smoother. It subtracts a fixed discount D
// from every observed count and redistributes the freed mass to the
// backoff distribution, recursing word by word down to the empty
// context, where the backoff terminates in a uniform floor.
type Abs struct {
	smootherBase
	d  float64
	rf *RFreqs
}

// NewAbs returns an Absolute Discount smoother of order n over f, with
// discount d. d must be in (0, 1].
func NewAbs(f *KgramFreqs, n int, d float64) (*Abs, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	if d <= 0 || d > 1 {
		return nil, newError(OutOfRange, "discount must be in (0, 1], got %g", d)
	}
	return &Abs{base, d, NewRFreqs(f)}, nil
}

// D returns the discount.
func (a *Abs) D() float64 { return a.d }

// SetD updates the discount. Fails with OutOfRange if d is outside (0, 1].
func (a *Abs) SetD(d float64) error {
	if d <= 0 || d > 1 {
		return newError(OutOfRange, "discount must be in (0, 1], got %g", d)
	}
	a.d = d
	return nil
}

// SetN updates the effective order.
func (a *Abs) SetN(n int) error { return a.setN(n) }

// Prob returns the Absolute Discount conditional probability of word
// given context, truncated to the smoother's order.
func (a *Abs) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	return a.recurse(word, truncate(context, a.n))
}

// recurse implements P(w|c) = max(F(c,w)-D, 0)/F(c) + alpha(c)*P(w|c--),
// with alpha(c) = D*R(c)/F(c) (or 1 if F(c) is zero) and the recursion
// bottoming out in a uniform floor at the empty context.
func (a *Abs) recurse(word, context string) float64 {
	den := float64(a.f.Query(context))
	num := float64(a.f.Query(appendWord(context, word))) - a.d
	if num < 0 {
		num = 0
	}
	probPart := 0.0
	if den != 0 {
		probPart = num / den
	}
	var lower float64
	if context == "" {
		lower = 1.0 / float64(a.V()+2)
	} else {
		lower = a.recurse(word, backoffWords(context))
	}
	order, code := a.f.KgramCode(context)
	rCount := float64(a.rf.At(order, code))
	alpha := 1.0
	if den != 0 {
		alpha = a.d * rCount / den
	}
	return probPart + alpha*lower
}

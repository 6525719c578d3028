package kgrams

// KN is the Kneser-Ney smoother. The top-level query discounts raw
// counts; every recursive (backed-off) query discounts continuation
// counts instead, per the original formulation.
type KN struct {
	smootherBase
	d  float64
	kf *KNFreqs
}

// NewKN returns a Kneser-Ney smoother of order n over f, with discount d.
// d must be in (0, 1].
func NewKN(f *KgramFreqs, n int, d float64) (*KN, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	if d <= 0 || d > 1 {
		return nil, newError(OutOfRange, "discount must be in (0, 1], got %g", d)
	}
	return &KN{base, d, NewKNFreqs(f)}, nil
}

// D returns the discount.
func (s *KN) D() float64 { return s.d }

// SetD updates the discount. Fails with OutOfRange if d is outside (0, 1].
func (s *KN) SetD(d float64) error {
	if d <= 0 || d > 1 {
		return newError(OutOfRange, "discount must be in (0, 1], got %g", d)
	}
	s.d = d
	return nil
}

// SetN updates the effective order.
func (s *KN) SetN(n int) error { return s.setN(n) }

// Prob returns the Kneser-Ney conditional probability of word given
// context, truncated to the smoother's order.
func (s *KN) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	context = truncate(context, s.n)

	den := float64(s.f.Query(context))
	num := float64(s.f.Query(appendWord(context, word))) - s.d
	if num < 0 {
		num = 0
	}
	probPart := 0.0
	if den != 0 {
		probPart = num / den
	}

	if context == "" {
		if den == 0 {
			return 0
		}
		numType := float64(len(s.f.Table(1)) - 1)
		backoffFac := s.d * numType / den
		contProb := 1.0 / float64(s.V()+2)
		return probPart + backoffFac*contProb
	}

	order, code := s.f.KgramCode(context)
	rCount := float64(s.kf.rAt(order, code))
	backoffFac := 1.0
	if den != 0 {
		backoffFac = s.d * rCount / den
	}
	wordCode := s.f.Index(word)
	return probPart + backoffFac*s.continuation(wordCode, dropFirstWord(code), order)
}

// continuation recurses over k-gram codes using continuation counts,
// for context of the given order (the order of "context+wordCode"
// combined). It bottoms out in a uniform floor at the empty context.
func (s *KN) continuation(wordCode, context string, order int) float64 {
	den := float64(s.kf.lrAt(order-1, context))
	numKey := appendWord(context, wordCode)
	num := float64(s.kf.lAt(order, numKey)) - s.d
	if num < 0 {
		num = 0
	}
	probPart := 0.0
	if den != 0 {
		probPart = num / den
	}

	if context == "" {
		numType := float64(len(s.f.Table(1)) - 1)
		backoffFac := 0.0
		if den != 0 {
			backoffFac = s.d * numType / den
		} else {
			backoffFac = 1
		}
		contProb := 1.0 / float64(s.V()+2)
		return probPart + backoffFac*contProb
	}

	rCount := float64(s.kf.rAt(order-1, context))
	backoffFac := 1.0
	if den != 0 {
		backoffFac = s.d * rCount / den
	}
	return probPart + backoffFac*s.continuation(wordCode, dropFirstWord(context), order-1)
}

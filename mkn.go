package kgrams

// MKN is the Modified Kneser-Ney smoother: like KN, but the single
// discount is replaced by three discounts chosen by count bucket (1, 2,
// or 3-or-more), at every recursion level.
type MKN struct {
	smootherBase
	d1, d2, d3 float64
	mf         *mKNFreqs
}

// NewMKN returns a Modified Kneser-Ney smoother of order n over f, with
// discounts d1, d2, d3 for singleton, doubleton, and 3-or-more counts.
// Each must be in (0, 1].
func NewMKN(f *KgramFreqs, n int, d1, d2, d3 float64) (*MKN, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	for _, d := range []float64{d1, d2, d3} {
		if d <= 0 || d > 1 {
			return nil, newError(OutOfRange, "discounts must be in (0, 1], got %g", d)
		}
	}
	return &MKN{base, d1, d2, d3, NewMKNFreqs(f)}, nil
}

// D1, D2, D3 return the bucketed discounts.
func (s *MKN) D1() float64 { return s.d1 }
func (s *MKN) D2() float64 { return s.d2 }
func (s *MKN) D3() float64 { return s.d3 }

// SetD1, SetD2, SetD3 update the bucketed discounts. Each fails with
// OutOfRange if d is outside (0, 1].
func (s *MKN) SetD1(d float64) error { return s.setD(&s.d1, d) }
func (s *MKN) SetD2(d float64) error { return s.setD(&s.d2, d) }
func (s *MKN) SetD3(d float64) error { return s.setD(&s.d3, d) }

func (s *MKN) setD(dst *float64, d float64) error {
	if d <= 0 || d > 1 {
		return newError(OutOfRange, "discounts must be in (0, 1], got %g", d)
	}
	*dst = d
	return nil
}

// SetN updates the effective order.
func (s *MKN) SetN(n int) error { return s.setN(n) }

// discount picks the bucketed discount for a raw or continuation count.
func (s *MKN) discount(count int) float64 {
	switch countBucket(count) {
	case 1:
		return s.d1
	case 2:
		return s.d2
	default:
		return s.d3
	}
}

// Prob returns the Modified Kneser-Ney conditional probability of word
// given context, truncated to the smoother's order.
func (s *MKN) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	context = truncate(context, s.n)

	den := float64(s.f.Query(context))
	raw := s.f.Query(appendWord(context, word))
	num := float64(raw) - s.discount(raw)
	if num < 0 {
		num = 0
	}
	probPart := 0.0
	if den != 0 {
		probPart = num / den
	}

	order, code := s.f.KgramCode(context)
	r1, r2, r3 := s.mf.rBuckets(order, true, code)
	mass := 1.0
	if den != 0 {
		mass = (s.d1*float64(r1) + s.d2*float64(r2) + s.d3*float64(r3)) / den
	}
	wordCode := s.f.Index(word)
	return probPart + mass*s.continuation(wordCode, dropFirstWord(code), order)
}

// continuation recurses over k-gram codes using continuation counts,
// bottoming out in a uniform floor at the empty context. order is the
// order of "context+wordCode" combined.
func (s *MKN) continuation(wordCode, context string, order int) float64 {
	if context == "" {
		return 1.0 / float64(s.V()+2)
	}
	den := float64(s.mf.lrAt(order-1, context))
	rawCont := s.mf.lAt(order, appendWord(context, wordCode))
	num := float64(rawCont) - s.discount(rawCont)
	if num < 0 {
		num = 0
	}
	probPart := 0.0
	if den != 0 {
		probPart = num / den
	}

	r1, r2, r3 := s.mf.rBuckets(order-1, false, context)
	mass := 1.0
	if den != 0 {
		mass = (s.d1*float64(r1) + s.d2*float64(r2) + s.d3*float64(r3)) / den
	}
	return probPart + mass*s.continuation(wordCode, dropFirstWord(context), order-1)
}

package kgrams

// SBO is the Stupid Backoff smoother. It returns an unnormalized score,
// not a probability: starting from penalization 1, while the full
// k-gram has zero count it peels the leftmost context word and
// multiplies the penalization by lambda, until either a nonzero count is
// found or the context is exhausted.
type SBO struct {
	smootherBase
	lambda float64
}

// NewSBO returns a Stupid Backoff smoother of order n over f, with
// penalization lambda. lambda must be in [0, 1].
func NewSBO(f *KgramFreqs, n int, lambda float64) (*SBO, error) {
	base, err := newSmootherBase(f, n)
	if err != nil {
		return nil, err
	}
	if lambda < 0 || lambda > 1 {
		return nil, newError(OutOfRange, "lambda must be in [0, 1], got %g", lambda)
	}
	return &SBO{base, lambda}, nil
}

// Lambda returns the backoff penalization.
func (s *SBO) Lambda() float64 { return s.lambda }

// SetLambda updates the backoff penalization. Fails with OutOfRange if
// lambda is outside [0, 1].
func (s *SBO) SetLambda(lambda float64) error {
	if lambda < 0 || lambda > 1 {
		return newError(OutOfRange, "lambda must be in [0, 1], got %g", lambda)
	}
	s.lambda = lambda
	return nil
}

// SetN updates the effective order.
func (s *SBO) SetN(n int) error { return s.setN(n) }

// Prob returns the Stupid Backoff score of word given context. This is
// not a normalized probability.
func (s *SBO) Prob(word, context string) float64 {
	if word == "" || word == BOSTok {
		return UndefinedProb
	}
	context = truncate(context, s.n)
	penalization := 1.0
	for {
		count := s.f.Query(appendWord(context, word))
		if count != 0 {
			return penalization * float64(count) / float64(s.f.Query(context))
		}
		context = backoffWords(context)
		penalization *= s.lambda
		if context == "" && s.f.Query(word) == 0 {
			return 1.0 / float64(s.V()+2)
		}
	}
}

package kgrams

import "fmt"

// ErrorKind classifies the documented failure modes of this package's
// public API: out-of-domain parameters, conditional probabilities that
// are not defined for their argument, and malformed caller input.
type ErrorKind int

const (
	// OutOfRange reports a parameter outside its documented domain: an
	// order larger than the backing model supports, a discount outside
	// (0, 1] (a zero discount is rejected), a penalization outside
	// [0, 1], a non-positive add-k constant, or a k-gram order beyond N
	// in KgramFreqs.Unique.
	OutOfRange ErrorKind = iota
	// Undefined reports that a conditional probability has no value for
	// its arguments (querying BOS as a word, a blank word, or ML on an
	// unseen context). Per-word probability functions report this case
	// through the UndefinedProb sentinel; no function of this package
	// returns an Error of this kind.
	Undefined
	// InvalidInput reports malformed caller input, such as an empty line
	// handed to a sentence tokenizer.
	InvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case Undefined:
		return "Undefined"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned at the public boundary of this
// package.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// UndefinedProb is the sentinel returned in place of a per-word
// conditional probability that is not defined for its arguments (e.g.
// P(BOS | c), or ML on an unseen context). Sentence scorers propagate it
// as a NaN log-probability contribution for that word, rather than
// failing the whole sentence.
const UndefinedProb = -1.0

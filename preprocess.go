package kgrams

import (
	"regexp"
	"strings"
)

// DefaultErasePattern strips anything that is not alphanumeric,
// whitespace, or one of .?!:;' — which keeps the apostrophe and the
// characters .?!:; that SentenceTokenizer's default pattern splits on.
const DefaultErasePattern = `[^.?!:;'a-zA-Z0-9\s]`

// Preprocessor strips unwanted characters from raw text and optionally
// lower-cases it, ahead of tokenization.
type Preprocessor struct {
	erase *regexp.Regexp
	lower bool
}

// NewPreprocessor returns a Preprocessor that removes runs matching
// erase (DefaultErasePattern if nil) and lower-cases the result iff
// lower is set.
func NewPreprocessor(erase *regexp.Regexp, lower bool) *Preprocessor {
	if erase == nil {
		erase = regexp.MustCompile(DefaultErasePattern)
	}
	return &Preprocessor{erase, lower}
}

// Process removes every run matched by p's erase pattern, then
// lower-cases the result if p.lower is set.
func (p *Preprocessor) Process(text string) string {
	out := p.erase.ReplaceAllString(text, "")
	if p.lower {
		out = strings.ToLower(out)
	}
	return out
}

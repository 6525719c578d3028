package kgrams

import "strings"

// WordStream is a cursor over a borrowed string that yields its
// whitespace-delimited words one at a time, followed by a terminal EOS
// sentinel once exhausted. It never copies the source string and must
// be constructed from a string that outlives it.
type WordStream struct {
	str   string
	start int
	end   int
	eos   bool
}

// NewWordStream returns a WordStream positioned at the first word of s.
func NewWordStream(s string) *WordStream {
	start := indexFirstNonSpace(s, 0)
	end := 0
	if start < 0 {
		start = len(s)
		end = len(s)
	}
	return &WordStream{str: s, start: start, end: end}
}

// EOS reports whether the stream has been exhausted, i.e. whether the
// most recent PopWord call returned the EOS sentinel.
func (w *WordStream) EOS() bool { return w.eos }

// PopWord returns the next whitespace-delimited word and advances the
// cursor past it. Once the string is exhausted it sets the EOS flag and
// returns the EOS token; further calls keep returning EOS.
func (w *WordStream) PopWord() string {
	if w.end >= len(w.str) {
		w.eos = true
		return EOSTok
	}
	if s := indexFirstNonSpace(w.str, w.end); s < 0 {
		w.eos = true
		return EOSTok
	} else {
		w.start = s
	}
	if e := indexFirstSpace(w.str, w.start); e < 0 {
		w.end = len(w.str)
		return w.str[w.start:]
	} else {
		w.end = e
		return w.str[w.start:w.end]
	}
}

func indexFirstNonSpace(s string, from int) int {
	if from > len(s) {
		return -1
	}
	if i := strings.IndexFunc(s[from:], func(r rune) bool { return r != ' ' }); i >= 0 {
		return from + i
	}
	return -1
}

func indexFirstSpace(s string, from int) int {
	if from > len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], ' '); i >= 0 {
		return from + i
	}
	return -1
}

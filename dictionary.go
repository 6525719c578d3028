package kgrams

import "strconv"

// Dictionary is a bijection between words and decimal-string index
// codes, with reserved BOS/EOS/UNK slots. Insertion is append-only and
// idempotent; indices are assigned in insertion order starting at 1, so
// the resulting k-gram codes depend on that order.
type Dictionary struct {
	wordToInd map[string]string
	indToWord map[string]string
	v         int
}

// NewDictionary returns an empty Dictionary containing only the
// reserved special tokens.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		wordToInd: make(map[string]string),
		indToWord: make(map[string]string),
	}
	d.insertSpecialTokens()
	return d
}

// NewDictionaryFromWords returns a Dictionary seeded with words, in
// addition to the reserved special tokens.
func NewDictionaryFromWords(words []string) *Dictionary {
	d := NewDictionary()
	for _, w := range words {
		d.Insert(w)
	}
	return d
}

func (d *Dictionary) insertSpecialTokens() {
	d.wordToInd[BOSTok] = BOSInd
	d.indToWord[BOSInd] = BOSTok
	d.wordToInd[EOSTok] = EOSInd
	d.indToWord[EOSInd] = EOSTok
	// UNKTok is deliberately not added to wordToInd: looking up an
	// unseen word must fall through to the UNK index via Index, not
	// resolve UNKTok itself as "contained".
	d.indToWord[UNKInd] = UNKTok
}

// Contains reports whether word has been explicitly inserted. BOS and
// EOS are considered contained; UNK is not (unseen words resolve to UNK
// via Index, but UNK itself was never inserted).
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.wordToInd[word]
	return ok
}

// Insert adds word to the dictionary, assigning it the next integer
// index. A no-op if word is already contained or is UNKTok, which
// always keeps the reserved UNK index.
func (d *Dictionary) Insert(word string) {
	if d.Contains(word) || word == UNKTok {
		return
	}
	d.v++
	ind := strconv.Itoa(d.v)
	d.wordToInd[word] = ind
	d.indToWord[ind] = word
}

// Word returns the word for a given index code, or UNKTok on miss.
func (d *Dictionary) Word(index string) string {
	if w, ok := d.indToWord[index]; ok {
		return w
	}
	return UNKTok
}

// Index returns the index code for a given word, or UNKInd on miss.
func (d *Dictionary) Index(word string) string {
	if i, ok := d.wordToInd[word]; ok {
		return i
	}
	return UNKInd
}

// Length returns the dictionary size, excluding BOS, EOS and UNK.
func (d *Dictionary) Length() int { return d.v }

// Size is an alias for Length.
func (d *Dictionary) Size() int { return d.Length() }

// KgramCode tokenizes a raw k-gram string via WordStream and returns the
// pair (k, code): k is the number of words consumed, code is the
// space-separated concatenation of their index codes. Tokenization ends
// at the EOS sentinel WordStream yields once the text is exhausted, and
// that sentinel is not encoded; an EOS token written in the raw text is
// encoded like a known word with index "0", and BOS appearing in the raw
// text is preserved as a regular (known) word with index "-1".
func (d *Dictionary) KgramCode(kgram string) (int, string) {
	stream := NewWordStream(kgram)
	var b []byte
	k := 0
	for {
		word := stream.PopWord()
		if stream.EOS() {
			break
		}
		if k > 0 {
			b = append(b, ' ')
		}
		b = append(b, d.Index(word)...)
		k++
	}
	return k, string(b)
}

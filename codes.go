package kgrams

import "strings"

// splitFirstWord returns the first space-separated index in code and the
// remainder after it (empty if code has a single index). Used to back
// off a k-gram code by dropping its leftmost word.
func splitFirstWord(code string) (first, rest string) {
	if i := strings.IndexByte(code, ' '); i >= 0 {
		return code[:i], code[i+1:]
	}
	return code, ""
}

// splitLastWord returns the code with its last space-separated index
// removed, and that last index on its own. Used to read off the word
// completing a k-gram code.
func splitLastWord(code string) (rest, last string) {
	if i := strings.LastIndexByte(code, ' '); i >= 0 {
		return code[:i], code[i+1:]
	}
	return "", code
}

// dropFirstWord removes the leftmost index from a k-gram code, the
// code-level counterpart of backoffWords.
func dropFirstWord(code string) string {
	_, rest := splitFirstWord(code)
	return rest
}

// appendWord concatenates a context code and a word code, separated by a
// single space unless context is empty.
func appendWord(context, word string) string {
	if context == "" {
		return word
	}
	return context + " " + word
}

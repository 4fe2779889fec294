package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// Term is one parsed reaction term: an integer coefficient applied to a
// species identifier, e.g. "2A" -> {2, "A"}.
type Term struct {
	Coeff   int
	Species string
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokens splits a reaction side on every rune outside [A-Za-z0-9_],
// discarding empty pieces. "+" and whitespace are both separators, so
// "2A + B" and "2A+B" tokenize identically.
func tokens(part string) []string {
	return strings.FieldsFunc(part, func(r rune) bool { return !isWord(r) })
}

// splitCoeff strips the leading digit run of a token as its
// coefficient. No digit run means coefficient 1. A token that is all
// digits has no species name; the empty remainder signals a malformed
// term to the caller.
func splitCoeff(tok string) (coeff int, species string) {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1, tok
	}
	if i == len(tok) {
		return 1, ""
	}
	n, err := strconv.Atoi(tok[:i])
	if err != nil {
		return 1, tok[i:]
	}
	return n, tok[i:]
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}

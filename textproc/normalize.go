package textproc

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isHan reports whether r falls in the CJK Unified Ideographs block.
func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// Clean strips everything from text that carries no linguistic signal:
// punctuation, symbols, and digit runs. Whitespace runs collapse to a
// single space and the result is trimmed. Clean is pure; empty input
// yields empty output.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsDigit(r):
			// Digit runs are dropped outright, not replaced, so
			// "v2版本" and "v版本" normalize identically.
		case unicode.IsLetter(r) || isHan(r):
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Filter removes tokens that cannot contribute to a meaningful
// comparison: blanks, single-rune tokens, and stop words. Token order
// is preserved.
func Filter(tokens iter.Seq[string], stops StopWordSet) []string {
	var kept []string
	for token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" || utf8.RuneCountInString(trimmed) <= 1 {
			continue
		}
		if stops.Contains(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}

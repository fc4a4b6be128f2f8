package textutil

import "strings"

// Trim removes leading and trailing whitespace (space, tab, newline,
// carriage return). Whitespace-only input yields "".
func Trim(s string) string {
	return strings.Trim(s, " \t\n\r")
}

// SplitByDelimiter splits s on every occurrence of delim and trims each
// token. A trailing delimiter still yields a trailing empty token; callers
// discard it downstream when it carries no meaning.
func SplitByDelimiter(s string, delim rune) []string {
	parts := strings.Split(s, string(delim))
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Trim(p)
	}
	return out
}

// SplitByWord splits s on every literal occurrence of word. The match is
// case-sensitive and has no word-boundary guard, so a token containing
// word as a substring gets split mid-token. Each segment is trimmed; the
// segment after the last match is kept only when non-empty, so an
// expression ending exactly at the delimiter word emits no trailing
// empty alternative.
func SplitByWord(s, word string) []string {
	var out []string
	start := 0
	for {
		i := strings.Index(s[start:], word)
		if i < 0 {
			break
		}
		out = append(out, Trim(s[start:start+i]))
		start += i + len(word)
	}
	if last := Trim(s[start:]); last != "" {
		out = append(out, last)
	}
	return out
}

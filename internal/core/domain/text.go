package domain

import "strings"

const lineBreak = "<br />"

// NewlinesToBreaks inserts "<br />" before each newline sequence. The pairs
// "\r\n" and "\n\r" count as one newline; the newline itself is kept.
func NewlinesToBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8*strings.Count(s, "\n"))

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			b.WriteByte(ch)
			continue
		}
		b.WriteString(lineBreak)
		b.WriteByte(ch)
		if i+1 < len(s) && (s[i+1] == '\r' || s[i+1] == '\n') && s[i+1] != ch {
			i++
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

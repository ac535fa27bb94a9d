package match

import "bytes"

// Literal matches a fixed byte string.
type Literal struct {
	pattern    []byte
	ignoreCase bool
}

// NewLiteral returns a substring matcher. With ignoreCase, ASCII letters
// compare equal regardless of case.
func NewLiteral(pattern string, ignoreCase bool) *Literal {
	p := []byte(pattern)
	if ignoreCase {
		p = lowerASCII(p)
	}
	return &Literal{pattern: p, ignoreCase: ignoreCase}
}

// Find implements Matcher. Anchoring does not apply to literals.
func (l *Literal) Find(suffix []byte, _ bool) (Span, bool) {
	idx := l.index(suffix)
	if idx < 0 {
		return Span{}, false
	}
	return Span{Start: idx, End: idx + len(l.pattern)}, true
}

// Match implements Matcher.
func (l *Literal) Match(line []byte) bool {
	return l.index(line) >= 0
}

func (l *Literal) index(s []byte) int {
	if !l.ignoreCase {
		return bytes.Index(s, l.pattern)
	}
	n := len(l.pattern)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], l.pattern) {
			return i
		}
	}
	return -1
}

// equalFoldASCII compares s against an already lowered pattern.
func equalFoldASCII(s, lowered []byte) bool {
	for i, c := range s {
		if toLowerASCII(c) != lowered[i] {
			return false
		}
	}
	return true
}

func lowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = toLowerASCII(c)
	}
	return out
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

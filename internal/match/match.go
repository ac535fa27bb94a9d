// Package match locates occurrences of a pattern within one line of input.
//
// Two strategies share the Matcher interface: Literal for plain substrings
// and Regex for regular expressions. Both operate on raw bytes; no Unicode
// case folding or normalization is performed.
package match

// Span is a match location relative to the searched suffix.
// 0 <= Start <= End <= len(suffix).
type Span struct {
	Start int
	End   int
}

// Empty reports whether the match is zero-length.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Matcher finds pattern occurrences.
type Matcher interface {
	// Find returns the first match in suffix. atLineStart is false when suffix
	// does not begin at offset 0 of the line, in which case start-of-line
	// anchors must not match.
	Find(suffix []byte, atLineStart bool) (Span, bool)

	// Match reports whether line contains any match.
	Match(line []byte) bool
}

// Options selects and configures a matching strategy.
type Options struct {
	Regex      bool
	IgnoreCase bool
}

// New builds the matcher described by opts.
func New(pattern string, opts Options) (Matcher, error) {
	if opts.Regex {
		return NewRegex(pattern, opts.IgnoreCase)
	}
	return NewLiteral(pattern, opts.IgnoreCase), nil
}

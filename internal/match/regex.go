package match

import (
	"fmt"
	"regexp"
	"regexp/syntax"
)

// CompileError reports a pattern that is not a valid regular expression.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile regular expression -- %s: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Regex matches a regular expression with leftmost-longest semantics.
type Regex struct {
	re *regexp.Regexp
	// notBOL is re with every start-of-line assertion replaced by an
	// assertion that never matches. It equals re when the pattern has none.
	notBOL *regexp.Regexp
}

// NewRegex compiles pattern. ignoreCase folds case at compile time.
func NewRegex(pattern string, ignoreCase bool) (*Regex, error) {
	source := pattern
	flags := syntax.Perl
	if ignoreCase {
		source = "(?i)" + pattern
		flags |= syntax.FoldCase
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	re.Longest()

	tree, err := syntax.Parse(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	notBOL := re
	if suppressLineStart(tree) {
		notBOL, err = regexp.Compile(tree.String())
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		notBOL.Longest()
	}
	return &Regex{re: re, notBOL: notBOL}, nil
}

// Find implements Matcher.
func (r *Regex) Find(suffix []byte, atLineStart bool) (Span, bool) {
	re := r.re
	if !atLineStart {
		re = r.notBOL
	}
	loc := re.FindIndex(suffix)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// Match implements Matcher.
func (r *Regex) Match(line []byte) bool {
	return r.re.Match(line)
}

// suppressLineStart rewrites ^ and \A into no-match nodes and reports
// whether any were found.
func suppressLineStart(re *syntax.Regexp) bool {
	changed := false
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpBeginText:
		re.Op = syntax.OpNoMatch
		re.Flags = 0
		changed = true
	}
	for _, sub := range re.Sub {
		if suppressLineStart(sub) {
			changed = true
		}
	}
	return changed
}

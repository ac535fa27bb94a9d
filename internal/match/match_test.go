package match

import (
	"errors"
	"testing"
)

func TestLiteralFind(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		input      string
		want       Span
		wantOk     bool
	}{
		{"simple", "world", false, "hello world", Span{6, 11}, true},
		{"first of many", "ab", false, "xabab", Span{1, 3}, true},
		{"case mismatch", "World", false, "hello world", Span{}, false},
		{"fold pattern", "WORLD", true, "hello world", Span{6, 11}, true},
		{"fold subject", "world", true, "HELLO WoRlD", Span{6, 11}, true},
		{"no match", "xyz", true, "hello", Span{}, false},
		{"empty pattern", "", false, "abc", Span{0, 0}, true},
		{"pattern longer than input", "abcdef", true, "abc", Span{}, false},
		{"non ascii bytes compare exactly", "é", true, "É", Span{}, false},
		{"punctuation", "a-b", true, "A-B", Span{0, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLiteral(tt.pattern, tt.ignoreCase)
			got, ok := m.Find([]byte(tt.input), true)
			if ok != tt.wantOk {
				t.Fatalf("Find() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Find() = %+v, want %+v", got, tt.want)
			}
			if m.Match([]byte(tt.input)) != tt.wantOk {
				t.Errorf("Match() disagrees with Find()")
			}
		})
	}
}

func TestLiteralIgnoresAnchorFlag(t *testing.T) {
	m := NewLiteral("foo", false)
	got, ok := m.Find([]byte("foo"), false)
	if !ok || got != (Span{0, 3}) {
		t.Errorf("Find() = %+v, %v", got, ok)
	}
}

func TestRegexFind(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		ignoreCase  bool
		input       string
		atLineStart bool
		want        Span
		wantOk      bool
	}{
		{"plain", "wor.d", false, "hello world", true, Span{6, 11}, true},
		{"anchored at start", "^foo", false, "foofoo", true, Span{0, 3}, true},
		{"anchor suppressed", "^foo", false, "foo", false, Span{}, false},
		{"anchor inside alternation", "^a|b", false, "ab", false, Span{1, 2}, true},
		{"text anchor suppressed", `\Afoo`, false, "foo", false, Span{}, false},
		{"end anchor still works", "o$", false, "foo", false, Span{2, 3}, true},
		{"ignore case", "ERR(OR)?", true, "an error", true, Span{3, 8}, true},
		{"case sensitive", "ERROR", false, "an error", true, Span{}, false},
		{"leftmost longest", "a|ab", false, "xab", true, Span{1, 3}, true},
		{"empty match", "x*", false, "abc", true, Span{0, 0}, true},
		{"ignore case with anchor suppressed", "^foo", true, "FOO", false, Span{}, false},
		{"ignore case after anchor suppressed", "^x|foo", true, "FOO", false, Span{0, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewRegex(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewRegex() error = %v", err)
			}
			got, ok := m.Find([]byte(tt.input), tt.atLineStart)
			if ok != tt.wantOk {
				t.Fatalf("Find() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Find() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegexMatch(t *testing.T) {
	m, err := NewRegex("^an? (error|warning)", true)
	if err != nil {
		t.Fatalf("NewRegex() error = %v", err)
	}
	if !m.Match([]byte("An Error occurred")) {
		t.Error("Match() should find anchored match at line start")
	}
	if m.Match([]byte("there was an error")) {
		t.Error("Match() should respect ^ at line start")
	}
}

func TestRegexCompileError(t *testing.T) {
	_, err := NewRegex("a(b", false)
	if err == nil {
		t.Fatal("expected compile error")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CompileError", err)
	}
	if ce.Pattern != "a(b" {
		t.Errorf("Pattern = %q", ce.Pattern)
	}
	if errors.Unwrap(err) == nil {
		t.Error("CompileError should wrap the parser error")
	}
}

func TestNew(t *testing.T) {
	m, err := New("a.c", Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := m.(*Literal); !ok {
		t.Fatalf("New() without Regex = %T, want *Literal", m)
	}
	if m.Match([]byte("abc")) {
		t.Error("literal a.c should not match abc")
	}

	m, err = New("a.c", Options{Regex: true, IgnoreCase: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := m.(*Regex); !ok {
		t.Fatalf("New() with Regex = %T, want *Regex", m)
	}
	if !m.Match([]byte("ABC")) {
		t.Error("regex a.c with ignore case should match ABC")
	}

	if _, err := New("[", Options{Regex: true}); err == nil {
		t.Error("New() should report compile errors")
	}
}

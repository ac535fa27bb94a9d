package format

import (
	"bytes"
	"testing"
)

func intp(v int) *int { return &v }

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		wantStart string
	}{
		{"default", Selection{}, "\x1b[37;41m"},
		{"foreground only", Selection{Foreground: intp(1)}, "\x1b[31m"},
		{"background only", Selection{Background: intp(4)}, "\x1b[44m"},
		{"attribute only", Selection{Attribute: intp(1)}, "\x1b[1m"},
		{"underline and background", Selection{Attribute: intp(3), Background: intp(2)}, "\x1b[3;42m"},
		{"blink", Selection{Attribute: intp(4)}, "\x1b[4m"},
		{"hidden", Selection{Attribute: intp(6)}, "\x1b[8m"},
		{"all three", Selection{Attribute: intp(5), Foreground: intp(3), Background: intp(0)}, "\x1b[7;33;40m"},
		{"reset attribute", Selection{Attribute: intp(0)}, "\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.sel)
			if got.Start != tt.wantStart {
				t.Errorf("Build().Start = %q, want %q", got.Start, tt.wantStart)
			}
			if got.End != "\x1b[0m" {
				t.Errorf("Build().End = %q, want reset", got.End)
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	sel := Selection{Attribute: intp(2), Foreground: intp(6)}
	first := Build(sel)
	for i := 0; i < 3; i++ {
		if got := Build(sel); got != first {
			t.Fatalf("Build() = %+v, want %+v", got, first)
		}
	}
	if Build(Selection{}) != Build(Selection{}) {
		t.Fatal("default style should be stable")
	}
}

func TestDisabled(t *testing.T) {
	s := Disabled()
	if s.Enabled() {
		t.Fatalf("Disabled() should emit nothing, got %+v", s)
	}
	if !Build(Selection{}).Enabled() {
		t.Error("Build() should emit sequences")
	}
}

func TestLookup(t *testing.T) {
	if i, ok := LookupColor("white"); !ok || i != 7 {
		t.Errorf("LookupColor(white) = %d, %v", i, ok)
	}
	if i, ok := LookupColor("black"); !ok || i != 0 {
		t.Errorf("LookupColor(black) = %d, %v", i, ok)
	}
	if _, ok := LookupColor("purple"); ok {
		t.Error("LookupColor(purple) should fail")
	}
	if _, ok := LookupColor("Red"); ok {
		t.Error("color names are case-sensitive")
	}
	if i, ok := LookupAttribute("underline"); !ok || i != 3 {
		t.Errorf("LookupAttribute(underline) = %d, %v", i, ok)
	}
	if _, ok := LookupAttribute("italic"); ok {
		t.Error("LookupAttribute(italic) should fail")
	}
}

func TestReporterPlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, "highlight")
	r.Errorf("unknown foreground color -- %s", "purple")
	r.Warning("line length exceeded buffer")
	r.Debugf("hidden %d", 1)
	r.SetDebug(true)
	r.Debugf("shown %d", 2)

	want := "highlight: unknown foreground color -- purple\n" +
		"highlight: warning: line length exceeded buffer\n" +
		"[debug] shown 2\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// Package highlight wraps pattern matches in terminal escape sequences, one
// line at a time.
package highlight

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mchlksk/highlight/internal/format"
	"github.com/mchlksk/highlight/internal/match"
)

// Highlighter emits lines with every match enclosed in a Style.
type Highlighter struct {
	matcher   match.Matcher
	style     format.Style
	wholeLine bool
}

// New returns a Highlighter. With wholeLine set, a line containing any match
// is wrapped as a whole instead of per match.
func New(m match.Matcher, style format.Style, wholeLine bool) *Highlighter {
	return &Highlighter{matcher: m, style: style, wholeLine: wholeLine}
}

// Stats summarizes a Run.
type Stats struct {
	Lines        int
	MatchedLines int
	Matches      int
	Truncated    int
}

// Warning describes a non-fatal condition met while reading input.
type Warning struct {
	// Line is the 1-based number of the chunk that was cut.
	Line int
	Size int
}

func (w Warning) Error() string {
	return "line length exceeded buffer"
}

// Run highlights src into w until end of input. Output is flushed after
// every line. warn, if not nil, is called for each truncated chunk.
func (h *Highlighter) Run(src *Source, w io.Writer, warn func(Warning)) (Stats, error) {
	var stats Stats
	out := bufio.NewWriterSize(w, src.Size()*2)
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			if len(line.Bytes) > 0 {
				stats.Lines++
				if _, werr := h.WriteLine(out, line.Bytes); werr == nil {
					_ = out.Flush()
				}
			}
			return stats, fmt.Errorf("read input: %w", err)
		}
		stats.Lines++
		if line.Truncated {
			stats.Truncated++
			if warn != nil {
				warn(Warning{Line: stats.Lines, Size: src.Size()})
			}
		}

		n, err := h.WriteLine(out, line.Bytes)
		if err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		if n > 0 {
			stats.MatchedLines++
			stats.Matches += n
		}
		if err := out.Flush(); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
	}
}

// WriteLine writes one line to w and returns how many regions were
// highlighted. A trailing newline is kept outside the highlighted regions.
func (h *Highlighter) WriteLine(w io.Writer, line []byte) (int, error) {
	content, eol := splitEOL(line)
	ew := &errWriter{w: w}

	var n int
	if h.wholeLine {
		n = h.writeWhole(ew, content)
	} else {
		n = h.writeSpans(ew, content)
	}
	ew.write(eol)
	return n, ew.err
}

func (h *Highlighter) writeWhole(ew *errWriter, content []byte) int {
	if !h.matcher.Match(content) {
		ew.write(content)
		return 0
	}
	ew.writeString(h.style.Start)
	ew.write(content)
	ew.writeString(h.style.End)
	return 1
}

func (h *Highlighter) writeSpans(ew *errWriter, content []byte) int {
	n := 0
	cursor := 0
	for cursor < len(content) {
		suffix := content[cursor:]
		span, ok := h.matcher.Find(suffix, cursor == 0)
		if !ok {
			ew.write(suffix)
			return n
		}
		if span.Empty() {
			// Nothing to highlight; step one byte past the empty match so
			// the next search starts further along.
			step := span.Start + 1
			if step > len(suffix) {
				step = len(suffix)
			}
			ew.write(suffix[:step])
			cursor += step
			continue
		}
		ew.write(suffix[:span.Start])
		ew.writeString(h.style.Start)
		ew.write(suffix[span.Start:span.End])
		ew.writeString(h.style.End)
		cursor += span.End
		n++
	}
	return n
}

func splitEOL(line []byte) (content, eol []byte) {
	if bytes.HasSuffix(line, []byte{'\n'}) {
		return line[:len(line)-1], line[len(line)-1:]
	}
	return line, nil
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(b []byte) {
	if e.err != nil || len(b) == 0 {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *errWriter) writeString(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

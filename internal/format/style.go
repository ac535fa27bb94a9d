package format

import "strings"

// Reset is the sequence that ends every highlighted region.
const Reset = "\x1b[0m"

// Selection holds the optional attribute, foreground and background indices
// chosen by the user. A nil field means "not selected".
type Selection struct {
	Attribute  *int
	Foreground *int
	Background *int
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return s.Attribute == nil && s.Foreground == nil && s.Background == nil
}

// Style is the pair of sequences written around a highlighted region.
type Style struct {
	Start string
	End   string
}

// Enabled reports whether the style emits any escape sequence at all.
func (s Style) Enabled() bool {
	return s.Start != "" || s.End != ""
}

// Build turns a selection into start/end sequences. An empty selection falls
// back to white on red so that matches are always visible.
func Build(sel Selection) Style {
	if sel.Empty() {
		fg, bg := DefaultForeground, DefaultBackground
		sel = Selection{Foreground: &fg, Background: &bg}
	}

	codes := make([]string, 0, 3)
	if sel.Attribute != nil {
		codes = append(codes, attributeCode(*sel.Attribute))
	}
	if sel.Foreground != nil {
		codes = append(codes, foregroundCode(*sel.Foreground))
	}
	if sel.Background != nil {
		codes = append(codes, backgroundCode(*sel.Background))
	}
	return Style{
		Start: "\x1b[" + strings.Join(codes, ";") + "m",
		End:   Reset,
	}
}

// Disabled returns the style used when color output is turned off.
func Disabled() Style {
	return Style{}
}

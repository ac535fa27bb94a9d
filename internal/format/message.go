package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes diagnostics to the error stream. Markers are colored only
// when the stream is a terminal that supports it.
type Reporter struct {
	w     io.Writer
	prog  string
	debug bool

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	grayStyle    lipgloss.Style
}

// NewReporter creates a Reporter writing to w on behalf of prog.
func NewReporter(w io.Writer, prog string) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:            w,
		prog:         prog,
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // Red
		warningStyle: r.NewStyle().Foreground(lipgloss.Color("3")),            // Yellow
		grayStyle:    r.NewStyle().Foreground(lipgloss.Color("8")),            // Gray
	}
}

// SetDebug enables Debugf output.
func (r *Reporter) SetDebug(enabled bool) {
	r.debug = enabled
}

// Error prints "prog: message".
func (r *Reporter) Error(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.errorStyle.Render(r.prog+":"), msg)
}

// Errorf is Error with formatting.
func (r *Reporter) Errorf(format string, args ...any) {
	r.Error(fmt.Sprintf(format, args...))
}

// Warning prints "prog: warning: message".
func (r *Reporter) Warning(msg string) {
	fmt.Fprintf(r.w, "%s: %s %s\n", r.prog, r.warningStyle.Render("warning:"), msg)
}

// Debugf prints a debug line if debug output is enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.debug {
		return
	}
	fmt.Fprintf(r.w, "%s "+format+"\n", append([]any{r.grayStyle.Render("[debug]")}, args...)...)
}

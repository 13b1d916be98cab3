package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Formatter renders diagnostics with source snippets and caret underlines.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string
}

// NewFormatter creates a formatter writing to stderr.
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stderr)
}

// NewFormatterTo creates a formatter writing to out.
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a unit so snippets can be rendered
// without touching the filesystem (used when parsing from memory).
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

func (f *Formatter) loadSource(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no source unit")
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func severityStyle(sev Severity) lipgloss.Style {
	switch sev {
	case SeverityWarning:
		return warningStyle
	case SeverityNote:
		return noteStyle
	default:
		return errorStyle
	}
}

// Format renders one diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, err := f.loadSource(d.Span.Filename)
	if err != nil || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span)
		}
		f.printTrailer(d)
		return
	}

	f.printSnippet(src, d.Span)
	f.printTrailer(d)
}

func (f *Formatter) printHeader(d Diagnostic) {
	sev := string(d.Severity)
	if sev == "" {
		sev = string(SeverityError)
	}

	head := sev
	if d.Code != "" {
		head = fmt.Sprintf("%s[%s]", sev, d.Code)
	}
	fmt.Fprintf(f.out, "%s: %s\n", severityStyle(d.Severity).Render(head), d.Message)
}

func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span)
		return
	}

	content := lines[span.Line-1]
	gutterWidth := len(fmt.Sprintf("%d", span.Line))
	pad := strings.Repeat(" ", gutterWidth)

	fmt.Fprintf(f.out, "  --> %s\n", span)
	fmt.Fprintf(f.out, " %s %s\n", pad, gutterStyle.Render("|"))
	fmt.Fprintf(f.out, " %s %s %s\n", gutterStyle.Render(fmt.Sprintf("%d", span.Line)), gutterStyle.Render("|"), content)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	col := span.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(content) {
		col = len(content)
	}
	if col+width > len(content)+1 {
		width = len(content) + 1 - col
		if width < 1 {
			width = 1
		}
	}

	underline := strings.Repeat(" ", col) + caretStyle.Render(strings.Repeat("^", width))
	fmt.Fprintf(f.out, " %s %s %s\n", pad, gutterStyle.Render("|"), underline)
}

func (f *Formatter) printTrailer(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}

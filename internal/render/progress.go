// Package render provides output formatting for kioskgen.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Stable progress messages.
const (
	FoldersStartedMsg = "📁 Creating folders..."
	FilesStartedMsg   = "📄 Creating files..."
	DoneMsg           = "✅ Done! Flutter project structure is ready."
)

type styles struct {
	step lipgloss.Style
	done lipgloss.Style
}

// Progress writes the three human-readable status lines of a scaffold run.
type Progress struct {
	w      io.Writer
	styles styles
}

// NewProgress returns a Progress writing to w. When color is false, output is
// plain text regardless of what the terminal supports.
func NewProgress(w io.Writer, color bool) *Progress {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Progress{
		w: w,
		styles: styles{
			step: r.NewStyle().Foreground(lipgloss.Color("63")),
			done: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		},
	}
}

func (p *Progress) FoldersStarted() {
	fmt.Fprintln(p.w, p.styles.step.Render(FoldersStartedMsg))
}

func (p *Progress) FilesStarted() {
	fmt.Fprintln(p.w, p.styles.step.Render(FilesStartedMsg))
}

// Done prints the completion banner, separated by a blank line.
func (p *Progress) Done() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.done.Render(DoneMsg))
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/studytasks/internal/model"
)

// ColorMode selects how the renderer decides on colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Printer writes user-facing console output with the active theme.
// Successes and plain text go to out, failures to errOut.
type Printer struct {
	out, errOut io.Writer
	r           *lipgloss.Renderer
	theme       Theme

	title, muted, accent, success, failure, pending lipgloss.Style
}

// NewPrinter builds a Printer whose color profile follows out.
func NewPrinter(out, errOut io.Writer, theme Theme, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(out)
	switch {
	case theme.Plain || mode == ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		out:     out,
		errOut:  errOut,
		r:       r,
		theme:   theme,
		title:   r.NewStyle().Bold(!theme.Plain).Foreground(theme.Title),
		muted:   r.NewStyle().Foreground(theme.Muted),
		accent:  r.NewStyle().Foreground(theme.Accent),
		success: r.NewStyle().Foreground(theme.Success),
		failure: r.NewStyle().Foreground(theme.Error).Bold(!theme.Plain),
		pending: r.NewStyle().Foreground(theme.Pending),
	}
}

// Plain returns an uncolored classic Printer writing everything to w.
func Plain(w io.Writer) *Printer {
	return NewPrinter(w, w, LookupTheme("classic"), ColorNever)
}

// Theme returns the active theme.
func (p *Printer) Theme() Theme { return p.theme }

// Print writes s without a newline; used for prompts.
func (p *Printer) Print(s string) { fmt.Fprint(p.out, s) }

// Println writes a line of plain text.
func (p *Printer) Println(s string) { fmt.Fprintln(p.out, s) }

// Heading writes a bold line.
func (p *Printer) Heading(s string) { fmt.Fprintln(p.out, p.title.Render(s)) }

// OK writes a success line.
func (p *Printer) OK(msg string) { fmt.Fprintln(p.out, p.success.Render(msg)) }

// Info writes an accented line.
func (p *Printer) Info(msg string) { fmt.Fprintln(p.out, p.accent.Render(msg)) }

// Warn writes a warning line to errOut.
func (p *Printer) Warn(msg string) { fmt.Fprintln(p.errOut, p.pending.Render(msg)) }

// Fail writes an error line to errOut.
func (p *Printer) Fail(msg string) { fmt.Fprintln(p.errOut, p.failure.Render(msg)) }

// Muted renders s in the faint theme color.
func (p *Printer) Muted(s string) string { return p.muted.Render(s) }

// Marker renders the status marker for a task.
func (p *Printer) Marker(done bool) string {
	if done {
		return p.success.Render(p.theme.SymDone)
	}
	return p.pending.Render(p.theme.SymPending)
}

// TaskLine renders "[marker] id. title".
func (p *Printer) TaskLine(t model.Task) string {
	return fmt.Sprintf("[%s] %d. %s", p.Marker(t.Done), t.ID, t.Title)
}

// Counts renders the done/pending/total summary used by headers.
func (p *Printer) Counts(tasks model.Collection) string {
	done, pending := tasks.Stats()
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		p.success.Render(p.theme.SymDone), done,
		p.pending.Render("•"), pending,
		p.accent.Render("Total"), len(tasks),
	)
}

// Progress renders a done/total bar: the filled part in the success color,
// the rest muted, then the rounded-down percentage.
func (p *Printer) Progress(done, total, width int) string {
	width = max(width, 5)
	var filled, pct int
	if total > 0 {
		done = min(max(done, 0), total)
		filled = done * width / total
		pct = done * 100 / total
	}
	return p.success.Render(strings.Repeat("█", filled)) +
		p.muted.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", pct)
}

// Panel frames lines with the theme border.
func (p *Printer) Panel(lines []string) string {
	border := p.r.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.Muted).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

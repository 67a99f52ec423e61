// SPDX-License-Identifier: EPL-2.0

// Package cli renders audconv command output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/convert"
)

// Theme defines the colors used in command output.
type Theme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Failure lipgloss.Color
	Dim     lipgloss.Color
}

var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Success: lipgloss.Color("#3fb950"),
	Warning: lipgloss.Color("#d29922"),
	Failure: lipgloss.Color("#f85149"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Fail  lipgloss.Style
	Dim   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Bold(true),
		OK:    lipgloss.NewStyle().Foreground(t.Success),
		Warn:  lipgloss.NewStyle().Foreground(t.Warning),
		Fail:  lipgloss.NewStyle().Bold(true).Foreground(t.Failure),
		Dim:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

const barWidth = 20

// Progress renders one progress line with a fixed-width bar.
func (s Styles) Progress(e convert.ProgressEvent) string {
	frac := min(max(e.Fraction, 0), 1)
	filled := int(frac * barWidth)
	bar := s.Title.Render(strings.Repeat("█", filled)) + s.Dim.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%s %3.0f%% %s", bar, frac*100, e.Message)
}

// Outcome renders one conversion result. written is the output path, or
// empty when the output was not written.
func (s Styles) Outcome(o convert.Outcome, written string) string {
	if !o.Success() {
		return s.Fail.Render("✗") + " " + o.Err.Error()
	}

	line := s.OK.Render("✓") + " " + s.Label.Render(o.File)
	if written != "" {
		line += " → " + written
	}
	line += s.Dim.Render(fmt.Sprintf(" (%d bytes)", len(o.Output)))

	var notes []string
	if o.Substituted {
		notes = append(notes, fmt.Sprintf("%s written as %s", o.Target, o.Container))
	}
	if o.Synthetic {
		notes = append(notes, "decode failed, synthetic tone")
	}
	if len(notes) > 0 {
		line += " " + s.Warn.Render("["+strings.Join(notes, "; ")+"]")
	}

	return line
}

// Summary renders the final count line.
func (s Styles) Summary(outcomes []convert.Outcome) string {
	ok := convert.Succeeded(outcomes)
	style := s.OK
	if ok < len(outcomes) {
		style = s.Fail
	}

	return style.Render(fmt.Sprintf("%d/%d converted", ok, len(outcomes)))
}

// Probe is what the probe command learned about one file.
type Probe struct {
	File       string
	Detected   audio.Format
	SampleRate int
	Channels   int
	Frames     int
	Duration   time.Duration
	Err        error
}

// Probe renders a probe result as an aligned block.
func (s Styles) Probe(p Probe) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(p.File))
	b.WriteByte('\n')

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", s.Label.Render(fmt.Sprintf("%-9s", label+":")), value)
	}

	row("format", string(p.Detected))
	if p.Err != nil {
		row("error", s.Fail.Render(p.Err.Error()))
		return b.String()
	}

	row("rate", fmt.Sprintf("%d Hz", p.SampleRate))
	row("channels", fmt.Sprintf("%d", p.Channels))
	row("frames", fmt.Sprintf("%d", p.Frames))
	row("duration", p.Duration.Round(time.Millisecond).String())

	return b.String()
}

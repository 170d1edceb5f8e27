package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGold  = lipgloss.Color("#F4D03F")
	colorGreen = lipgloss.Color("#2CD7C7")
	colorSlate = lipgloss.Color("#5C7A84")
)

var styles = struct {
	Header   lipgloss.Style
	Part     lipgloss.Style
	Answer   lipgloss.Style
	Duration lipgloss.Style
}{
	Header:   lipgloss.NewStyle().Bold(true).Foreground(colorGold),
	Part:     lipgloss.NewStyle().Foreground(colorSlate),
	Answer:   lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Duration: lipgloss.NewStyle().Foreground(colorSlate),
}

// Render writes results grouped by day.
func Render(w io.Writer, results []Result) error {
	var b strings.Builder
	day := 0
	for _, res := range results {
		if res.Day != day {
			if day != 0 {
				b.WriteString("\n")
			}
			day = res.Day
			b.WriteString(styles.Header.Render(fmt.Sprintf("Day %02d: %s", res.Day, res.Title)))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			styles.Part.Render(fmt.Sprintf("part %d", res.Part)),
			styles.Answer.Render(res.Answer),
			styles.Duration.Render("("+res.Duration.String()+")"),
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderList writes one line per registered day.
func RenderList(w io.Writer, r *Runner) error {
	var b strings.Builder
	for _, d := range r.Days() {
		s, _ := r.Solver(d)
		fmt.Fprintf(&b, "%s %s\n", styles.Header.Render(fmt.Sprintf("%02d", d)), s.Title())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

package report

import "github.com/charmbracelet/lipgloss"

const divider = "────────────────────────────────"

// styles are bound to a renderer so that the colour profile follows the
// destination writer rather than os.Stdout.
type styles struct {
	page    lipgloss.Style
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	faint   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		page:    r.NewStyle().PaddingLeft(2),
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Underline(true),
		key:     r.NewStyle().Width(14),
		faint:   r.NewStyle().Faint(true),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

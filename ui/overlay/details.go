package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailsOverlay is a modal card showing the full metadata of one instance.
// Any key dismisses it.
type DetailsOverlay struct {
	Dismissed bool
	title     string
	statline  string
	rows      [][2]string
	width     int
}

// NewDetailsOverlay creates a details card with pre-formatted label/value rows.
func NewDetailsOverlay(title, statline string, rows [][2]string) *DetailsOverlay {
	return &DetailsOverlay{
		title:    title,
		statline: statline,
		rows:     rows,
		width:    60,
	}
}

// HandleKeyPress processes a key press. Every key closes the card.
func (d *DetailsOverlay) HandleKeyPress(tea.KeyMsg) bool {
	d.Dismissed = true
	return true
}

// Render renders the details overlay
func (d *DetailsOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	statStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Width(14)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	var content strings.Builder
	content.WriteString(titleStyle.Render(d.title))
	content.WriteString("\n")
	if d.statline != "" {
		content.WriteString(statStyle.Render(d.statline))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	for _, row := range d.rows {
		content.WriteString(labelStyle.Render(row[0]))
		content.WriteString(valueStyle.Render(row[1]))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(hintStyle.Render("[any key] Close"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(d.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (d *DetailsOverlay) SetWidth(width int) {
	d.width = width
}

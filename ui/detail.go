package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"prismdash/instance"
	"prismdash/ui/layout"
)

var detailNameStyle = TextStyles.Primary.Bold(true)

var detailLabelStyle = TextStyles.Muted.Width(12)

var detailValueStyle = TextStyles.Secondary

var placeholderStyle = TextStyles.Muted

// fallbackArt is shown in the panel when there is nothing to inspect.
var fallbackArt = []string{
	" ▄▄▄▄▄▄▄▄▄▄▄▄ ",
	" █▒▒▒▒▒▒▒▒▒▒█ ",
	" █▒▒█▒▒▒▒█▒▒█ ",
	" █▒▒▒▒▄▄▒▒▒▒█ ",
	" █▒▒▒▒██▒▒▒▒█ ",
	" ▀▀▀▀▀▀▀▀▀▀▀▀ ",
}

// DetailPanel renders the selected instance's metadata next to the list.
type DetailPanel struct {
	width, height int
	record        *instance.Record
	running       bool
	placeholder   string

	simplifyBadges bool
	hideLogoArt    bool

	spinner *spinner.Model
}

func NewDetailPanel(spinner *spinner.Model) *DetailPanel {
	return &DetailPanel{
		spinner:     spinner,
		placeholder: "No instance selected",
	}
}

func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetRecord sets the record to display. nil shows the placeholder screen.
func (d *DetailPanel) SetRecord(rec *instance.Record) {
	d.record = rec
}

func (d *DetailPanel) SetRunning(running bool) {
	d.running = running
}

// SetPlaceholder sets the text shown when no record is selected.
func (d *DetailPanel) SetPlaceholder(text string) {
	d.placeholder = text
}

// SetDegradation applies layout degradation flags.
func (d *DetailPanel) SetDegradation(deg layout.Degradation) {
	d.simplifyBadges = deg.SimplifyBadges
	d.hideLogoArt = deg.HideLogoArt
}

func (d *DetailPanel) String() string {
	if d.width <= 0 || d.height <= 0 {
		return ""
	}

	innerWidth := d.width - 4
	box := CardStyle().Width(max(innerWidth, 10)).Height(max(d.height-2, 3))

	if d.record == nil {
		return lipgloss.Place(d.width, d.height, lipgloss.Left, lipgloss.Top,
			box.Render(d.fallbackScreen()))
	}

	rec := *d.record
	var b strings.Builder

	name := rec.DisplayName
	if innerWidth > 3 && runewidth.StringWidth(name) > innerWidth {
		name = runewidth.Truncate(name, innerWidth, "...")
	}
	b.WriteString(detailNameStyle.Render(name))
	b.WriteString("\n")

	if d.running {
		b.WriteString(fmt.Sprintf("%s %s", d.spinner.View(), StatusStyles.Running.Render("running")))
	} else {
		b.WriteString(StatusStyles.Idle.Render("idle"))
	}
	b.WriteString("\n\n")

	loader := detailValueStyle.Render(rec.Loader.String())
	if !d.simplifyBadges {
		loader = LoaderBadge(rec.Loader)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Version", detailValueStyle.Render(versionOrUnknown(rec.GameVersion))},
		{"Loader", loader},
		{"Mods", detailValueStyle.Render(fmt.Sprintf("%d", rec.ModCount))},
		{"Playtime", detailValueStyle.Render(FormatPlaytime(rec.Playtime))},
		{"Last played", detailValueStyle.Render(FormatLastPlayed(rec.LastPlayed))},
		{"Folder", detailValueStyle.Render(truncatePath(rec.Path, innerWidth-12))},
	}

	for _, row := range rows {
		b.WriteString(detailLabelStyle.Render(row.label))
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	return lipgloss.Place(d.width, d.height, lipgloss.Left, lipgloss.Top,
		box.Render(b.String()))
}

func (d *DetailPanel) fallbackScreen() string {
	var lines []string
	if !d.hideLogoArt {
		lines = append(lines, fallbackArt...)
		lines = append(lines, "")
	}
	lines = append(lines, placeholderStyle.Render(d.placeholder))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func versionOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

// truncatePath shortens a path from the left so the instance folder name
// stays visible.
func truncatePath(path string, width int) string {
	if width <= 3 || runewidth.StringWidth(path) <= width {
		return path
	}
	runes := []rune(path)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > width-3 {
		runes = runes[1:]
	}
	return "..." + string(runes)
}

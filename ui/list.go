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

var runningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var modCountStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var titleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var listDescStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var selectedTitleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(BackgroundSelected).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#1a1a1a"})

var selectedDescStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(BackgroundSelected).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#1a1a1a"})

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var filterTagStyle = lipgloss.NewStyle().
	Background(BackgroundSelected).
	Foreground(lipgloss.Color("#1a1a1a"))

var playtimeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
	Italic(true)

var selectedPlaytimeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#444444"}).
	Italic(true)

var scrollHintStyle = TextStyles.Muted

// List displays instance records with one selectable row per instance.
type List struct {
	items         []instance.Record
	running       map[string]bool
	selectedIdx   int
	scrollOffset  int
	height, width int
	renderer      *RecordRenderer
	degradation   layout.Degradation

	// filterTag is shown next to the title while a filter is applied.
	filterTag string
}

func NewList(spinner *spinner.Model) *List {
	return &List{
		items:    []instance.Record{},
		running:  map[string]bool{},
		renderer: &RecordRenderer{spinner: spinner, showMeta: true, showPlaytime: true, showTimer: true},
	}
}

// SetSize sets the height and width of the list.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.renderer.setWidth(width)
	l.ensureVisible()
}

// SetDegradation applies layout degradation flags to the row renderer.
func (l *List) SetDegradation(d layout.Degradation) {
	l.degradation = d
	l.renderer.showMeta = d.ShouldShowDescription()
	l.renderer.showPlaytime = d.ShouldShowSummary()
	l.renderer.showTimer = d.ShouldShowTimer()
	l.renderer.hideScrollHints = d.HideScrollIndicators
	l.ensureVisible()
}

// SetFilterTag sets the filter text displayed in the title area. Empty
// clears it.
func (l *List) SetFilterTag(tag string) {
	l.filterTag = tag
}

// SetRecords replaces the list contents wholesale. Selection follows the
// previously selected record by id; if it left the list, the index clamps.
func (l *List) SetRecords(records []instance.Record) {
	var selectedID string
	if len(l.items) > 0 && l.selectedIdx < len(l.items) {
		selectedID = l.items[l.selectedIdx].ID
	}

	l.items = records

	if selectedID != "" {
		for i := range records {
			if records[i].ID == selectedID {
				l.selectedIdx = i
				l.ensureVisible()
				return
			}
		}
	}
	if l.selectedIdx >= len(records) {
		l.selectedIdx = max(0, len(records)-1)
	}
	l.ensureVisible()
}

// SetRunning replaces the running-state lookup used when rendering rows.
func (l *List) SetRunning(running map[string]bool) {
	if running == nil {
		running = map[string]bool{}
	}
	l.running = running
}

// IsRunning reports whether the record with the given id has a live process.
func (l *List) IsRunning(id string) bool {
	return l.running[id]
}

func (l *List) NumRecords() int {
	return len(l.items)
}

// Records returns the records currently displayed.
func (l *List) Records() []instance.Record {
	return l.items
}

// GetSelectedRecord returns the currently selected record, or nil when the
// list is empty.
func (l *List) GetSelectedRecord() *instance.Record {
	if len(l.items) == 0 {
		return nil
	}
	rec := l.items[l.selectedIdx]
	return &rec
}

// SelectedIndex returns the index of the selected row.
func (l *List) SelectedIndex() int {
	return l.selectedIdx
}

// SetSelectedIndex selects the given row, clamping to the list bounds.
func (l *List) SetSelectedIndex(idx int) {
	if len(l.items) == 0 {
		l.selectedIdx = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(l.items)-1 {
		idx = len(l.items) - 1
	}
	l.selectedIdx = idx
	l.ensureVisible()
}

// Down selects the next item in the list. Stops at the last row.
func (l *List) Down() {
	if len(l.items) == 0 {
		return
	}
	if l.selectedIdx < len(l.items)-1 {
		l.selectedIdx++
	}
	l.ensureVisible()
}

// Up selects the prev item in the list. Stops at the first row.
func (l *List) Up() {
	if len(l.items) == 0 {
		return
	}
	if l.selectedIdx > 0 {
		l.selectedIdx--
	}
	l.ensureVisible()
}

// rowHeight is the rendered height of one list row including the gap below.
func (l *List) rowHeight() int {
	h := 2 // title line plus gap
	if l.renderer.showMeta {
		h++
	}
	if l.renderer.showPlaytime {
		h++
	}
	return h
}

// visibleRows is how many rows fit in the list area.
func (l *List) visibleRows() int {
	rows := (l.height - l.degradation.GetTitleAreaHeight()) / l.rowHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible scrolls the window so the selected row stays on screen.
func (l *List) ensureVisible() {
	visible := l.visibleRows()
	if l.selectedIdx < l.scrollOffset {
		l.scrollOffset = l.selectedIdx
	}
	if l.selectedIdx >= l.scrollOffset+visible {
		l.scrollOffset = l.selectedIdx - visible + 1
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
	if maxOffset := max(0, len(l.items)-visible); l.scrollOffset > maxOffset {
		l.scrollOffset = maxOffset
	}
}

// RecordRenderer renders instance.Record rows.
type RecordRenderer struct {
	spinner *spinner.Model
	width   int

	showMeta        bool
	showPlaytime    bool
	showTimer       bool
	hideScrollHints bool
}

func (r *RecordRenderer) setWidth(width int) {
	r.width = width
}

const loaderIcon = "◆"

func (r *RecordRenderer) Render(rec instance.Record, idx int, selected, running bool) string {
	prefix := fmt.Sprintf(" %d. ", idx)
	if idx >= 10 {
		prefix = prefix[:len(prefix)-1]
	}
	titleS := selectedTitleStyle
	descS := selectedDescStyle
	if !selected {
		titleS = titleStyle
		descS = listDescStyle
	}

	// add spinner next to title if the game is running
	var join string
	if running {
		join = fmt.Sprintf("%s %s", r.spinner.View(), runningStyle.Render(IconRunning))
	}

	// Cut the title if it's too long.
	titleText := rec.DisplayName
	widthAvail := r.width - 3 - len(prefix) - 4
	if widthAvail > 3 && runewidth.StringWidth(titleText) > widthAvail {
		titleText = runewidth.Truncate(titleText, widthAvail, "...")
	}

	title := titleS.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		lipgloss.Place(r.width-5, 1, lipgloss.Left, lipgloss.Center, fmt.Sprintf("%s%s", prefix, titleText)),
		" ",
		join,
	))

	lines := []string{title}

	if r.showMeta {
		lines = append(lines, descS.Render(r.metaLine(rec, prefix, descS)))
	}
	if r.showPlaytime {
		lines = append(lines, descS.Render(r.playtimeLine(rec, prefix, selected, descS)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// metaLine is the version/loader line with the mod count right-aligned.
func (r *RecordRenderer) metaLine(rec instance.Record, prefix string, descS lipgloss.Style) string {
	version := rec.GameVersion
	if version == "" {
		version = "unknown"
	}
	meta := fmt.Sprintf("%s %s %s", loaderIcon, version, rec.Loader.String())

	var mods string
	if rec.ModCount > 0 {
		mods = fmt.Sprintf("%d mods", rec.ModCount)
		if rec.ModCount == 1 {
			mods = "1 mod"
		}
	}

	remainingWidth := r.width - 4
	remainingWidth -= len(prefix)
	remainingWidth -= runewidth.StringWidth(meta)
	remainingWidth -= len(mods)

	if remainingWidth < 0 {
		mods = ""
		remainingWidth = max(0, r.width-4-len(prefix)-runewidth.StringWidth(meta))
	}

	spaces := ""
	if remainingWidth > 0 {
		spaces = strings.Repeat(" ", remainingWidth)
	}

	styledMods := modCountStyle.Background(descS.GetBackground()).Render(mods)
	return fmt.Sprintf("%s%s%s%s", strings.Repeat(" ", len(prefix)), meta, spaces, styledMods)
}

// playtimeLine is the playtime/last-played line.
func (r *RecordRenderer) playtimeLine(rec instance.Record, prefix string, selected bool, descS lipgloss.Style) string {
	text := fmt.Sprintf("played %s", FormatPlaytime(rec.Playtime))
	if r.showTimer {
		text += fmt.Sprintf(" · %s", FormatLastPlayed(rec.LastPlayed))
	}

	maxWidth := r.width - len(prefix) - 4
	if maxWidth > 3 && len(text) > maxWidth {
		text = text[:maxWidth-3] + "..."
	}

	ptStyle := playtimeStyle
	if selected {
		ptStyle = selectedPlaytimeStyle.Background(descS.GetBackground())
	}
	return fmt.Sprintf("%s%s", strings.Repeat(" ", len(prefix)), ptStyle.Render(text))
}

func (l *List) String() string {
	const titleText = " Instances "
	compact := l.degradation.IsCompactMode()

	// Write the title. Compact mode drops the padding rows around it.
	var b strings.Builder
	if !compact {
		b.WriteString("\n")
	}

	// add padding of 2 because the border on list items adds some extra characters
	titleWidth := l.width - 2
	if l.filterTag == "" {
		b.WriteString(lipgloss.Place(
			titleWidth, 1, lipgloss.Left, lipgloss.Bottom, mainTitle.Render(titleText)))
	} else {
		tag := fmt.Sprintf(" /%s ", l.filterTag)
		title := lipgloss.Place(
			titleWidth/2, 1, lipgloss.Left, lipgloss.Bottom, mainTitle.Render(titleText))
		filter := lipgloss.Place(
			titleWidth-(titleWidth/2), 1, lipgloss.Right, lipgloss.Bottom, filterTagStyle.Render(tag))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, filter))
	}

	if compact {
		b.WriteString("\n")
	} else {
		b.WriteString("\n\n")
	}

	if !l.renderer.hideScrollHints {
		if l.scrollOffset > 0 {
			b.WriteString(scrollHintStyle.Render(fmt.Sprintf("  ↑ %d more", l.scrollOffset)))
		}
	}
	b.WriteString("\n")

	// Render the visible window of the list.
	visible := l.visibleRows()
	end := min(len(l.items), l.scrollOffset+visible)
	for i := l.scrollOffset; i < end; i++ {
		b.WriteString(l.renderer.Render(l.items[i], i+1, i == l.selectedIdx, l.running[l.items[i].ID]))
		if i != end-1 {
			b.WriteString("\n\n")
		}
	}

	if !l.renderer.hideScrollHints && end < len(l.items) {
		b.WriteString("\n")
		b.WriteString(scrollHintStyle.Render(fmt.Sprintf("  ↓ %d more", len(l.items)-end)))
	}

	return lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, b.String())
}

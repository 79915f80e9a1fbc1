package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBox is the single-line filter input shown while searching. The typed
// text narrows the list as it changes; leaving search keeps the filter.
type SearchBox struct {
	input textinput.Model
	width int
}

func NewSearchBox() *SearchBox {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter instances"
	ti.CharLimit = 64
	ti.PromptStyle = lipgloss.NewStyle().Foreground(Primary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(TextMuted)
	return &SearchBox{input: ti}
}

// Focus puts the cursor in the input and returns the blink command.
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

func (s *SearchBox) Blur() {
	s.input.Blur()
}

// Value returns the current filter text.
func (s *SearchBox) Value() string {
	return s.input.Value()
}

func (s *SearchBox) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// Update forwards key events to the underlying text input.
func (s *SearchBox) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SearchBox) SetSize(width int) {
	s.width = width
	s.input.Width = max(10, width-6)
}

func (s *SearchBox) String() string {
	return lipgloss.NewStyle().Padding(0, 1).Width(s.width).Render(s.input.View())
}

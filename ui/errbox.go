package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

// ErrBox displays transient error text in a single row under the menu.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

// Message returns the currently displayed text, or "" when clear.
func (e *ErrBox) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	if e.err != nil {
		text = e.err.Error()
		if e.width > 3 && runewidth.StringWidth(text) > e.width {
			text = runewidth.Truncate(text, e.width-3, "...")
		}
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, errStyle.Render(text))
}

// Package harness drives Bubble Tea models in tests. It feeds synthetic
// terminal events to a model and exposes the resulting state and view.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model under test.
type Harness struct {
	model tea.Model
}

// New wraps model and delivers the initial window size, the same first
// message a real terminal session produces.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{model: model}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg delivers msg to the model and keeps the updated model.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey delivers the runes of key as a key press.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey delivers a non-rune key such as enter or esc.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize delivers a window size change.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View renders the current model.
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model for type assertions.
func (h *Harness) Model() tea.Model {
	return h.model
}

// TerminalSize names a terminal geometry used in size sweeps.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes covers the dashboard's layout tiers: the 80x24 floor, the
// badge and timer degradation widths, the summary-hiding heights, and
// roomy terminals where nothing degrades.
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "narrow", Width: 85, Height: 40},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "short", Width: 200, Height: 24},
	{Name: "large", Width: 200, Height: 50},
}

// RunWithSizes runs fn once per size as a named subtest.
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs fn across CommonSizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}

// KeySequence is a scripted series of key presses.
type KeySequence []tea.Msg

// NewKeySequence builds a sequence from rune inputs.
func NewKeySequence(keys ...string) KeySequence {
	var seq KeySequence
	for _, key := range keys {
		seq = append(seq, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
	return seq
}

// Play delivers the sequence in order.
func (seq KeySequence) Play(h *Harness) {
	for _, msg := range seq {
		h.SendMsg(msg)
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prismdash/instance"
	"prismdash/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateEmpty
	StateSearch
	StateDetails
)

type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState
	record        *instance.Record

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var defaultMenuOptions = []keys.KeyName{keys.KeyRefresh, keys.KeySearch, keys.KeyQuit}
var searchMenuOptions = []keys.KeyName{keys.KeyFilterDone, keys.KeyFilterErase}
var detailsMenuOptions = []keys.KeyName{keys.KeyDismiss}

func NewMenu() *Menu {
	return &Menu{
		options: defaultMenuOptions,
		state:   StateEmpty,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

// SetRecord updates the current record and refreshes menu options
func (m *Menu) SetRecord(record *instance.Record) {
	m.record = record
	// Only change the state if we're not in a modal state
	if m.state != StateSearch && m.state != StateDetails {
		if m.record != nil {
			m.state = StateDefault
		} else {
			m.state = StateEmpty
		}
	}
	m.updateOptions()
}

// updateOptions updates the menu options based on current state and record
func (m *Menu) updateOptions() {
	switch m.state {
	case StateEmpty:
		m.options = defaultMenuOptions
	case StateDefault:
		if m.record != nil {
			m.addRecordOptions()
		} else {
			m.options = defaultMenuOptions
		}
	case StateSearch:
		m.options = searchMenuOptions
	case StateDetails:
		m.options = detailsMenuOptions
	}
}

func (m *Menu) addRecordOptions() {
	// Instance group
	options := []keys.KeyName{keys.KeyLaunch, keys.KeyOpenFolder, keys.KeyDetails, keys.KeyYank}

	// View group
	viewGroup := []keys.KeyName{keys.KeySortCycle, keys.KeySearch, keys.KeyRefresh}

	// System group
	systemGroup := []keys.KeyName{keys.KeyQuit}

	options = append(options, viewGroup...)
	options = append(options, systemGroup...)

	m.options = options
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	// Define group boundaries based on current state
	var groups []struct {
		start int
		end   int
	}

	switch m.state {
	case StateEmpty:
		// Empty state: r, /, q
		groups = []struct {
			start int
			end   int
		}{
			{0, 2}, // Action group (r, /)
			{2, 3}, // System group (q)
		}
	case StateDefault:
		// Default state with record: enter, o, d, y | s, /, r | q
		groups = []struct {
			start int
			end   int
		}{
			{0, 4},              // Instance group (enter, o, d, y)
			{4, 7},              // View group (s, /, r)
			{7, len(m.options)}, // System group (q)
		}
	default:
		// Search or Details state
		groups = []struct {
			start int
			end   int
		}{
			{0, len(m.options)}, // All options in one group
		}
	}

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if m.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		var inActionGroup bool
		switch m.state {
		case StateEmpty:
			// For empty state, the action group is the first group
			inActionGroup = i <= 1
		default:
			// For other states, the action group is the second group
			if len(groups) > 1 {
				inActionGroup = i >= groups[1].start && i < groups[1].end
			}
		}

		if inActionGroup {
			s.WriteString(localActionStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localActionStyle.Render(binding.Help().Desc))
		} else {
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))
		}

		// Add appropriate separator
		if i != len(m.options)-1 {
			isGroupEnd := false
			for _, group := range groups {
				if i == group.end-1 {
					s.WriteString(sepStyle.Render(verticalSeparator))
					isGroupEnd = true
					break
				}
			}
			if !isGroupEnd {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}

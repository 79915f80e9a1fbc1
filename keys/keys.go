package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLaunch
	KeyOpenFolder
	KeyDetails
	KeySortCycle
	KeySearch
	KeyRefresh
	KeyYank
	KeyQuit

	// Display-only names. These never appear in GlobalKeyStringsMap because
	// their keys are consumed by mode-specific input handling; the menu still
	// needs bindings to render hints for them.
	KeyFilterDone
	KeyFilterErase
	KeyDismiss
)

// GlobalKeyStringsMap maps key strings from tea.KeyMsg to key names. Only
// keys handled by the browse-mode dispatch belong here.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":    KeyUp,
	"k":     KeyUp,
	"down":  KeyDown,
	"j":     KeyDown,
	"enter": KeyLaunch,
	"o":     KeyOpenFolder,
	"d":     KeyDetails,
	"s":     KeySortCycle,
	"/":     KeySearch,
	"r":     KeyRefresh,
	"y":     KeyYank,
	"q":     KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLaunch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	KeyOpenFolder: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open folder"),
	),
	KeyDetails: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "details"),
	),
	KeySortCycle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),

	KeyFilterDone: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "done"),
	),
	KeyFilterErase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "erase"),
	),
	KeyDismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("any key", "close"),
	),
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"prismdash/instance"
)

// Semantic Color Palette
// Designed for accessibility (colorblind-safe) with both color and shape differentiation.

// Status colors - each status has a distinct color and associated icon
var (
	// StatusRunning marks instances with a live game process
	// Color: Green, Icon: spinner + "running"
	StatusRunning = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusWarning indicates needs attention
	// Color: Amber, Icon: "!"
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusError indicates errors/failures
	// Color: Red, Icon: "x"
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusIdle marks instances with no live process
	// Color: Gray, Icon: none
	StatusIdle = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (metadata, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSelected is for selected rows. Light in both themes since the
	// selected foreground stays dark.
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#dde4f0"}
)

// Status icons for accessibility (shape + color)
const (
	IconRunning = "▶"
	IconWarning = "!"
)

// loaderColors maps each mod loader to a badge color close to its branding.
var loaderColors = map[instance.Loader]lipgloss.AdaptiveColor{
	instance.LoaderVanilla:  {Light: "#3E8948", Dark: "#3E8948"},
	instance.LoaderFabric:   {Light: "#8A7753", Dark: "#B8A46F"},
	instance.LoaderForge:    {Light: "#466380", Dark: "#5B82A8"},
	instance.LoaderQuilt:    {Light: "#8B61B4", Dark: "#9C6FD0"},
	instance.LoaderNeoForge: {Light: "#D96F32", Dark: "#D96F32"},
	instance.LoaderUnknown:  {Light: "#9CA3AF", Dark: "#6B7280"},
}

// LoaderColor returns the badge color for a loader.
func LoaderColor(l instance.Loader) lipgloss.AdaptiveColor {
	if c, ok := loaderColors[l]; ok {
		return c
	}
	return loaderColors[instance.LoaderUnknown]
}

// LoaderBadge returns the loader name as a colored badge.
func LoaderBadge(l instance.Loader) string {
	return BadgeStyle(LoaderColor(l)).Render(l.String())
}

// Pre-built styles for common UI elements

// StatusStyles contains pre-built styles for each status type
var StatusStyles = struct {
	Running lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Idle    lipgloss.Style
}{
	Running: lipgloss.NewStyle().Foreground(StatusRunning),
	Warning: lipgloss.NewStyle().Foreground(StatusWarning),
	Error:   lipgloss.NewStyle().Foreground(StatusError),
	Idle:    lipgloss.NewStyle().Foreground(StatusIdle),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// CardStyle creates a style for card-like containers
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}

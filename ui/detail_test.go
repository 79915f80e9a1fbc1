package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"prismdash/instance"
	"prismdash/testing/snapshot"
	"prismdash/ui/layout"
)

func newTestDetail() *DetailPanel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	d := NewDetailPanel(&s)
	d.SetSize(50, 20)
	return d
}

func TestDetailPanelShowsRecordMetadata(t *testing.T) {
	last := time.Now().Add(-26 * time.Hour)
	rec := &instance.Record{
		ID:          "skyblock",
		DisplayName: "Skyblock",
		Path:        "/instances/skyblock",
		GameVersion: "1.20.4",
		Loader:      instance.LoaderFabric,
		ModCount:    42,
		Playtime:    3*time.Hour + 20*time.Minute,
		LastPlayed:  &last,
	}

	d := newTestDetail()
	d.SetRecord(rec)

	out := snapshot.StripANSI(d.String())
	assert.Contains(t, out, "Skyblock")
	assert.Contains(t, out, "idle")
	assert.Contains(t, out, "1.20.4")
	assert.Contains(t, out, "Fabric")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "3h 20m")
	assert.Contains(t, out, "1d ago")
	assert.Contains(t, out, "/instances/skyblock")
}

func TestDetailPanelRunningState(t *testing.T) {
	d := newTestDetail()
	d.SetRecord(&instance.Record{ID: "alpha", DisplayName: "Alpha", Path: "/instances/alpha"})

	d.SetRunning(true)
	out := snapshot.StripANSI(d.String())
	assert.Contains(t, out, "running")
	assert.NotContains(t, out, "idle")

	d.SetRunning(false)
	assert.Contains(t, snapshot.StripANSI(d.String()), "idle")
}

func TestDetailPanelDefaultsForSparseRecords(t *testing.T) {
	d := newTestDetail()
	d.SetRecord(&instance.Record{ID: "bare", DisplayName: "Bare", Path: "/instances/bare"})

	out := snapshot.StripANSI(d.String())
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "0m")
}

func TestDetailPanelPlaceholder(t *testing.T) {
	d := newTestDetail()

	out := snapshot.StripANSI(d.String())
	assert.Contains(t, out, "No instance selected")

	d.SetPlaceholder("No instances match the filter")
	out = snapshot.StripANSI(d.String())
	assert.Contains(t, out, "No instances match")
}

func TestDetailPanelHidesArtWhenDegraded(t *testing.T) {
	d := newTestDetail()

	assert.Contains(t, snapshot.StripANSI(d.String()), "▄▄")

	d.SetDegradation(layout.Degradation{HideLogoArt: true})
	out := snapshot.StripANSI(d.String())
	assert.NotContains(t, out, "▄▄")
	assert.Contains(t, out, "No instance selected")
}

func TestDetailPanelEmptyAtZeroSize(t *testing.T) {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	d := NewDetailPanel(&s)
	assert.Equal(t, "", d.String())
}

func TestTruncatePathKeepsFolderName(t *testing.T) {
	path := "/home/user/.local/share/PrismLauncher/instances/Skyblock"
	got := truncatePath(path, 24)

	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "Skyblock"))
	assert.LessOrEqual(t, runewidth.StringWidth(got), 24)

	// Short paths pass through untouched.
	assert.Equal(t, "/instances/x", truncatePath("/instances/x", 24))
}

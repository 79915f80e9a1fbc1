package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prismdash/config"
	"prismdash/inspect"
	"prismdash/instance"
	"prismdash/keys"
	"prismdash/launch"
	"prismdash/log"
	"prismdash/procmon"
	"prismdash/ui"
	"prismdash/ui/layout"
	"prismdash/ui/overlay"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, appConfig *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, appConfig),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateBrowse state = iota
	// stateSearch is the state when the user is editing the filter.
	stateSearch
	// stateDetails is the state when the details card is displayed.
	stateDetails
)

func (s state) String() string {
	switch s {
	case stateSearch:
		return "search"
	case stateDetails:
		return "details"
	default:
		return "browse"
	}
}

type home struct {
	ctx context.Context

	// -- Configuration and Services --

	// appConfig stores application configuration
	appConfig *config.Config
	// repo scans the instances root
	repo *instance.Repository
	// monitor answers which instances have a live game process
	monitor *procmon.Monitor
	// dispatcher starts launcher and file-manager processes
	dispatcher *launch.Dispatcher

	// -- State --

	// state is the current discrete state of the application
	state state
	// records is the full scan result; projections never mutate it
	records []instance.Record
	// sortKey is the active projection sort
	sortKey instance.SortKey
	// filter is the filter text, kept when leaving search
	filter string
	// running is the latest process snapshot keyed by record id
	running map[string]bool

	// -- UI Components --

	// list displays the projected instances
	list *ui.List
	// menu displays the bottom menu
	menu *ui.Menu
	// detail displays the selected instance's metadata
	detail *ui.DetailPanel
	// searchBox is the filter input shown while searching
	searchBox *ui.SearchBox
	// errBox displays transient error messages
	errBox *ui.ErrBox
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	// detailsOverlay displays the full-metadata card
	detailsOverlay *overlay.DetailsOverlay

	// -- Layout --

	constraints layout.Constraints
	degradation layout.Degradation
}

func newHome(ctx context.Context, appConfig *config.Config) *home {
	h := &home{
		ctx:        ctx,
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		menu:       ui.NewMenu(),
		errBox:     ui.NewErrBox(),
		searchBox:  ui.NewSearchBox(),
		appConfig:  appConfig,
		repo:       instance.NewRepository(appConfig.InstancesRoot),
		monitor:    procmon.NewMonitor(),
		dispatcher: launch.NewDispatcher(appConfig.LaunchCommand, appConfig.FileManagerCommand),
		state:      stateBrowse,
		running:    map[string]bool{},
	}
	h.list = ui.NewList(&h.spinner)
	h.detail = ui.NewDetailPanel(&h.spinner)

	records, err := h.repo.Scan()
	if err != nil {
		fmt.Printf("Failed to scan instances: %v\n", err)
		os.Exit(1)
	}
	h.records = records
	h.refreshProjection()

	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	m.degradation = layout.ComputeDegradation(m.constraints)
	log.LayoutTrace("%dx%d mode=%s list=%dx%d detail=%dx%d",
		msg.Width, msg.Height, m.constraints.Mode,
		m.constraints.ListWidth, m.constraints.ListHeight,
		m.constraints.DetailWidth, m.constraints.DetailHeight)

	m.list.SetSize(m.constraints.ListWidth, m.constraints.ListHeight)
	m.list.SetDegradation(m.degradation)
	m.detail.SetSize(m.constraints.DetailWidth, m.constraints.DetailHeight)
	m.detail.SetDegradation(m.degradation)
	m.menu.SetSize(m.constraints.MenuWidth, m.constraints.MenuHeight)
	m.errBox.SetSize(m.constraints.ErrBoxWidth, m.constraints.ErrBoxHeight)
	m.searchBox.SetSize(m.constraints.ErrBoxWidth)

	if m.detailsOverlay != nil {
		w, _ := layout.ComputeOverlaySize(msg.Width, msg.Height, 60, 20)
		m.detailsOverlay.SetWidth(w)
	}
}

func (m *home) Init() tea.Cmd {
	// Upon starting, we want to start the spinner. Whenever we get a spinner.TickMsg, we
	// update the spinner, which sends a new spinner.TickMsg.
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			time.Sleep(100 * time.Millisecond)
			return procTickMsg{}
		},
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case procTickMsg:
		// Query the process table for the visible rows. Every tick is a
		// fresh snapshot; nothing is cached between checks.
		running := m.monitor.Snapshot(m.ctx, m.list.Records())
		if m.monitor.Changed(running) {
			m.running = running
			m.list.SetRunning(running)
			m.selectionChanged()
		}
		return m, procTickCmd
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.MouseMsg:
		// Mouse wheel moves the selection like up/down.
		if msg.Action == tea.MouseActionPress && m.state != stateDetails {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.list.Up()
				m.selectionChanged()
			case tea.MouseButtonWheelDown:
				m.list.Down()
				m.selectionChanged()
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		// Handle errors bubbled up from commands
		return m, m.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateBrowse {
		return nil
	}
	// If it's in the global keymap, we should try to highlight it.
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	log.InputTrace("%q in %s", msg.String(), m.state)

	// ctrl+c quits from any state.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	if m.state == stateDetails {
		// Any key dismisses the details card.
		m.detailsOverlay.HandleKeyPress(msg)
		m.detailsOverlay = nil
		m.state = stateBrowse
		m.menu.SetState(ui.StateDefault)
		m.refreshProjection()
		return m, nil
	}

	if m.state == stateSearch {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			// Leave search. The filter text is remembered but no longer
			// narrows the list.
			m.state = stateBrowse
			m.searchBox.Blur()
			m.menu.SetState(ui.StateDefault)
			m.refreshProjection()
			return m, nil
		case tea.KeyUp:
			m.list.Up()
			m.selectionChanged()
			return m, nil
		case tea.KeyDown:
			m.list.Down()
			m.selectionChanged()
			return m, nil
		default:
			inputCmd := m.searchBox.Update(msg)
			m.filter = m.searchBox.Value()
			m.refreshProjection()
			return m, inputCmd
		}
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyUp:
		m.list.Up()
		m.selectionChanged()
		return m, highlightCmd
	case keys.KeyDown:
		m.list.Down()
		m.selectionChanged()
		return m, highlightCmd
	case keys.KeySortCycle:
		m.sortKey = m.sortKey.Next()
		m.refreshProjection()
		return m, highlightCmd
	case keys.KeySearch:
		m.state = stateSearch
		m.menu.SetState(ui.StateSearch)
		m.searchBox.SetValue(m.filter)
		m.refreshProjection()
		return m, tea.Batch(highlightCmd, m.searchBox.Focus())
	case keys.KeyRefresh:
		return m, tea.Batch(highlightCmd, m.refreshInstances())
	case keys.KeyLaunch:
		selected := m.list.GetSelectedRecord()
		if selected == nil {
			return m, nil
		}
		if err := m.dispatcher.Launch(*selected); err != nil {
			return m, tea.Batch(highlightCmd, m.handleError(err))
		}
		return m, tea.Batch(highlightCmd, m.notice(fmt.Sprintf("launched %s", selected.DisplayName)))
	case keys.KeyOpenFolder:
		selected := m.list.GetSelectedRecord()
		if selected == nil {
			return m, nil
		}
		if err := m.dispatcher.OpenFolder(*selected); err != nil {
			return m, tea.Batch(highlightCmd, m.handleError(err))
		}
		return m, highlightCmd
	case keys.KeyYank:
		selected := m.list.GetSelectedRecord()
		if selected == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(selected.Path); err != nil {
			return m, tea.Batch(highlightCmd, m.handleError(fmt.Errorf("failed to copy path: %w", err)))
		}
		return m, tea.Batch(highlightCmd, m.notice("copied instance path"))
	case keys.KeyDetails:
		selected := m.list.GetSelectedRecord()
		if selected == nil {
			return m, nil
		}
		m.openDetails(*selected)
		return m, highlightCmd
	default:
		return m, nil
	}
}

// refreshProjection recomputes the visible rows from the records, filter,
// and sort key. The filter only narrows the list while searching; selection
// follows the selected record id across recomputes.
func (m *home) refreshProjection() {
	query := ""
	if m.state == stateSearch {
		query = m.filter
	}

	projected := instance.Project(m.records, query, m.sortKey)
	m.list.SetRecords(projected)
	m.list.SetRunning(m.running)
	m.list.SetFilterTag(query)

	if len(m.records) == 0 {
		m.detail.SetPlaceholder(fmt.Sprintf("No instances found under %s", m.repo.Root()))
	} else {
		m.detail.SetPlaceholder("No instances match the filter")
	}

	m.selectionChanged()
}

// selectionChanged updates the detail panel and menu for the selected row.
func (m *home) selectionChanged() {
	selected := m.list.GetSelectedRecord()
	m.menu.SetRecord(selected)
	m.detail.SetRecord(selected)
	if selected != nil {
		m.detail.SetRunning(m.running[selected.ID])
	}
}

// refreshInstances rescans the instances root and replaces the collection
// wholesale. A failed rescan keeps the previous collection and surfaces a
// transient error.
func (m *home) refreshInstances() tea.Cmd {
	records, err := m.repo.Scan()
	if err != nil {
		return m.handleError(err)
	}
	m.records = records
	m.refreshProjection()
	return m.notice(fmt.Sprintf("found %d instances", len(records)))
}

// openDetails opens the full-metadata card for the record.
func (m *home) openDetails(rec instance.Record) {
	statline := "idle"
	if m.running[rec.ID] {
		statline = "running"
	}

	version := rec.GameVersion
	if version == "" {
		version = "unknown"
	}

	rows := [][2]string{
		{"Instance ID", rec.ID},
		{"Version", version},
		{"Loader", rec.Loader.String()},
		{"Mods", fmt.Sprintf("%d", rec.ModCount)},
		{"Playtime", ui.FormatPlaytime(rec.Playtime)},
		{"Last played", lastPlayedDetail(rec.LastPlayed)},
		{"Folder", rec.Path},
	}

	m.detailsOverlay = overlay.NewDetailsOverlay(rec.DisplayName, statline, rows)
	w, _ := layout.ComputeOverlaySize(m.constraints.TerminalWidth, m.constraints.TerminalHeight, 60, 20)
	m.detailsOverlay.SetWidth(w)
	m.state = stateDetails
	m.menu.SetState(ui.StateDetails)
}

func lastPlayedDetail(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04"), ui.FormatRelativeTime(*t))
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// procTickMsg implements tea.Msg and triggers a process-table check.
type procTickMsg struct{}

// procTickCmd schedules the next process-table check. Note that each check
// enumerates the whole process table; it's an expensive operation.
var procTickCmd = func() tea.Msg {
	time.Sleep(2 * time.Second)
	return procTickMsg{}
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// notice shows a transient informational message via the error box (it's
// just a message display) and clears it after 3 seconds.
func (m *home) notice(text string) tea.Cmd {
	log.InfoLog.Printf("%s", text)
	m.errBox.SetError(fmt.Errorf("%s", text))
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	if log.DebugEnabled {
		frameStart := time.Now()
		defer func() { log.GetProfiler().RecordFrame(time.Since(frameStart)) }()
	}

	var contentView string
	if m.constraints.ShowMinWarning {
		warning := fmt.Sprintf("%s Terminal too small - need at least %dx%d",
			ui.IconWarning, layout.MinWidth, layout.MinHeight)
		contentView = lipgloss.Place(
			m.constraints.TerminalWidth,
			m.constraints.ListHeight,
			lipgloss.Center, lipgloss.Center,
			ui.StatusStyles.Warning.Render(warning))
	} else if m.constraints.UseVerticalStack {
		contentView = lipgloss.JoinVertical(lipgloss.Left, m.list.String(), m.detail.String())
	} else {
		contentView = lipgloss.JoinHorizontal(lipgloss.Top, m.list.String(), m.detail.String())
	}

	bottomLine := m.errBox.String()
	if m.state == stateSearch {
		bottomLine = m.searchBox.String()
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Center,
		contentView,
		m.menu.String(),
		bottomLine,
	)

	if m.state == stateDetails {
		if m.detailsOverlay == nil {
			log.ErrorLog.Printf("details overlay is nil")
		} else {
			mainView = overlay.PlaceOverlay(0, 0, m.detailsOverlay.Render(), mainView, true, true)
		}
	}

	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.buildSnapshot()); err != nil {
			log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
		}
	}

	return mainView
}

// buildSnapshot captures the full UI state for introspection tooling.
func (m *home) buildSnapshot() *inspect.Snapshot {
	root := inspect.NewNode("App").
		WithBounds(0, 0, m.constraints.TerminalWidth, m.constraints.TerminalHeight)
	root.AddChild(m.list.InspectNode())
	root.AddChild(m.detail.InspectNode())
	root.AddChild(m.menu.InspectNode())
	root.AddChild(m.errBox.InspectNode())
	if m.state == stateSearch {
		root.AddChild(m.searchBox.InspectNode())
	}

	runningCount := 0
	for _, up := range m.running {
		if up {
			runningCount++
		}
	}

	snap := inspect.NewSnapshot().
		WithTerminal(m.constraints.TerminalWidth, m.constraints.TerminalHeight).
		WithLayout(m.constraints, m.degradation).
		WithComponents(root)

	snap.AppState = inspect.AppStateInfo{
		State:         m.state.String(),
		SortKey:       m.sortKey.String(),
		FilterText:    m.filter,
		HasOverlay:    m.detailsOverlay != nil,
		InstanceCount: m.list.NumRecords(),
		TotalCount:    len(m.records),
		RunningCount:  runningCount,
		SelectedIndex: m.list.SelectedIndex(),
		ErrorMessage:  m.errBox.Message(),
	}
	if m.detailsOverlay != nil {
		snap.AppState.OverlayType = "details"
	}
	return snap
}

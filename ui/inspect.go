package ui

import (
	"github.com/mattn/go-runewidth"

	"prismdash/inspect"
)

// InspectNode reports the list state for UI introspection.
func (l *List) InspectNode() *inspect.Node {
	node := inspect.NewNode("List").
		WithBounds(0, 0, l.width, l.height).
		WithState("record_count", len(l.items)).
		WithState("selected_index", l.selectedIdx).
		WithState("scroll_offset", l.scrollOffset).
		WithState("filter_tag", l.filterTag)

	visible := l.visibleRows()
	end := min(len(l.items), l.scrollOffset+visible)
	for i := l.scrollOffset; i < end; i++ {
		rec := l.items[i]
		child := inspect.NewNode("ListItem").
			WithID(rec.ID).
			WithBounds(0, 0, l.width, l.rowHeight()-1).
			WithState("selected", i == l.selectedIdx).
			WithState("running", l.running[rec.ID]).
			WithState("loader", rec.Loader.String()).
			WithContent(rec.DisplayName)

		widthAvail := l.width - 12
		if nameWidth := runewidth.StringWidth(rec.DisplayName); widthAvail > 3 && nameWidth > widthAvail {
			child.WithTruncation(nameWidth, widthAvail, true)
		}
		if i == l.selectedIdx {
			child.WithStyles(inspect.ExtractStyleInfo(selectedTitleStyle, "selectedTitle"))
		}
		node.AddChild(child)
	}
	return node
}

// InspectNode reports the menu state for UI introspection.
func (m *Menu) InspectNode() *inspect.Node {
	var state string
	switch m.state {
	case StateEmpty:
		state = "empty"
	case StateSearch:
		state = "search"
	case StateDetails:
		state = "details"
	default:
		state = "default"
	}
	return inspect.NewNode("Menu").
		WithBounds(0, 0, m.width, m.height).
		WithState("state", state).
		WithState("option_count", len(m.options))
}

// InspectNode reports the error box state for UI introspection.
func (e *ErrBox) InspectNode() *inspect.Node {
	node := inspect.NewNode("ErrBox").
		WithBounds(0, 0, e.width, e.height)
	if e.err != nil {
		node.WithContent(e.err.Error())
	}
	return node
}

// InspectNode reports the detail panel state for UI introspection.
func (d *DetailPanel) InspectNode() *inspect.Node {
	node := inspect.NewNode("DetailPanel").
		WithBounds(0, 0, d.width, d.height).
		WithState("running", d.running).
		WithState("simplify_badges", d.simplifyBadges)
	if d.record != nil {
		node.WithID(d.record.ID)
	} else {
		node.WithState("placeholder", d.placeholder)
	}
	return node
}

// InspectNode reports the search box state for UI introspection.
func (s *SearchBox) InspectNode() *inspect.Node {
	return inspect.NewNode("SearchBox").
		WithBounds(0, 0, s.width, 1).
		WithContent(s.Value())
}

// Package filepane provides the directory listing pane. It wraps the
// generic list component with directory-aware rendering and emits open
// and selection actions for the app to act on.
package filepane

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sash/internal/ui"
	"github.com/llehouerou/sash/internal/ui/list"
	"github.com/llehouerou/sash/internal/ui/render"
	"github.com/llehouerou/sash/internal/ui/styles"
)

// Entry is one row of the listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Model is the files pane.
type Model struct {
	ui.Base
	list list.Model[Entry]
	path string
}

// New creates an empty files pane.
func New() Model {
	return Model{
		list: list.New[Entry](ui.ScrollMargin),
	}
}

// SetEntries replaces the listing with the contents of path.
func (m *Model) SetEntries(path string, entries []Entry) {
	m.path = path
	m.list.SetItems(entries)
	m.list.Cursor().Reset()
}

// Path returns the directory currently listed.
func (m Model) Path() string {
	return m.path
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	return m.list.Selected()
}

// SetSize sets the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetFocused sets keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// Update handles key and mouse messages. Mouse coordinates must already
// be local to the pane.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	before := m.list.SelectedIndex()
	res := m.list.Update(msg)

	var cmds []tea.Cmd
	if res.Action == list.ActionEnter {
		if entry, ok := m.list.Selected(); ok {
			cmds = append(cmds, func() tea.Msg { return ActionMsg(Open{Entry: entry}) })
		}
	}
	if m.list.SelectedIndex() != before {
		if entry, ok := m.list.Selected(); ok {
			cmds = append(cmds, func() tea.Msg { return ActionMsg(Selected{Entry: entry}) })
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// View renders the pane.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	if m.Width() < ui.MinPaneCells {
		return ""
	}

	innerWidth := m.InnerWidth()
	listHeight := m.list.ListHeight(ui.PanelOverhead)

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	rows := m.renderRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + rows

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	t := styles.T()
	count := fmt.Sprintf("%d items", m.list.Len())
	left := render.Truncate(m.path, innerWidth-len(count)-1)
	return t.S().Title.Render(render.Row(left, count, innerWidth))
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	t := styles.T()

	if m.list.Len() == 0 {
		out := t.S().Muted.Render(render.TruncateAndPad("(empty)", innerWidth))
		for range listHeight - 1 {
			out += "\n" + render.EmptyLine(innerWidth)
		}
		return out
	}

	start, end := m.list.VisibleRange(ui.PanelOverhead)
	items := m.list.Items()

	out := ""
	for i := start; i < end; i++ {
		if i > start {
			out += "\n"
		}
		out += m.renderRow(items[i], i == m.list.SelectedIndex(), innerWidth)
	}
	for i := end - start; i < listHeight; i++ {
		out += "\n" + render.EmptyLine(innerWidth)
	}
	return out
}

func (m Model) renderRow(e Entry, selected bool, innerWidth int) string {
	t := styles.T()

	name := render.Sanitize(e.Name)
	var right string
	if e.IsDir {
		name += "/"
	} else {
		right = humanize.Bytes(uint64(max(e.Size, 0)))
	}
	row := render.Row(render.Truncate(name, innerWidth-len(right)-1), right, innerWidth)

	switch {
	case selected && m.IsFocused():
		return t.S().Cursor.Render(row)
	case e.IsDir:
		return t.S().Title.Render(row)
	default:
		return t.S().Base.Render(row)
	}
}

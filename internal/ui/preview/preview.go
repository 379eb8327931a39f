// Package preview provides the read-only file preview pane.
package preview

import (
	"bytes"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sash/internal/keymap"
	"github.com/llehouerou/sash/internal/ui"
	"github.com/llehouerou/sash/internal/ui/cursor"
	"github.com/llehouerou/sash/internal/ui/render"
	"github.com/llehouerou/sash/internal/ui/styles"
)

// maxLines caps how much of a file the pane keeps around.
const maxLines = 5000

// binaryProbe is how many leading bytes are checked for NUL.
const binaryProbe = 1024

// Model is the preview pane.
type Model struct {
	ui.Base
	path     string
	name     string
	size     int64
	lines    []string
	binary   bool
	offset   int
	resolver *keymap.Resolver
}

// New creates an empty preview pane.
func New() Model {
	return Model{
		resolver: keymap.NewResolver(keymap.ByContext("preview")),
	}
}

// SetContent loads file data into the pane. Binary files are detected by
// a NUL byte in the leading probe and rendered as a placeholder instead.
func (m *Model) SetContent(path, name string, size int64, data []byte) {
	m.path = path
	m.name = name
	m.size = size
	m.offset = 0
	m.lines = nil

	probe := data
	if len(probe) > binaryProbe {
		probe = probe[:binaryProbe]
	}
	m.binary = bytes.IndexByte(probe, 0) >= 0
	if m.binary {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		m.lines = append(m.lines, render.Sanitize(strings.ReplaceAll(line, "\t", "    ")))
		if len(m.lines) >= maxLines {
			break
		}
	}
}

// Clear empties the pane.
func (m *Model) Clear() {
	m.path = ""
	m.name = ""
	m.size = 0
	m.lines = nil
	m.binary = false
	m.offset = 0
}

// Path returns the path of the previewed file.
func (m Model) Path() string {
	return m.path
}

// Update handles scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		switch m.resolver.Resolve(msg.String()) {
		case keymap.ActionScrollDown:
			m.scroll(1)
		case keymap.ActionScrollUp:
			m.scroll(-1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.scroll(cursor.WheelStep)
		case tea.MouseButtonWheelUp:
			m.scroll(-cursor.WheelStep)
		}
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	maxOffset := max(len(m.lines)-m.ListHeight(ui.PanelOverhead), 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
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
	listHeight := m.ListHeight(ui.PanelOverhead)

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	body := m.renderBody(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + body

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	t := styles.T()
	if m.path == "" {
		return t.S().Muted.Render(render.TruncateAndPad("Preview", innerWidth))
	}
	right := humanize.Bytes(uint64(max(m.size, 0)))
	left := render.Truncate(m.name, innerWidth-len(right)-1)
	return t.S().Title.Render(render.Row(left, right, innerWidth))
}

func (m Model) renderBody(innerWidth, listHeight int) string {
	t := styles.T()

	var rows []string
	switch {
	case m.path == "":
		rows = append(rows, t.S().Muted.Render(render.TruncateAndPad("(no file selected)", innerWidth)))
	case m.binary:
		rows = append(rows, t.S().Muted.Render(render.TruncateAndPad("(binary file)", innerWidth)))
	default:
		end := min(m.offset+listHeight, len(m.lines))
		for i := m.offset; i < end; i++ {
			rows = append(rows, t.S().Base.Render(render.TruncateAndPad(m.lines[i], innerWidth)))
		}
	}
	for len(rows) < listHeight {
		rows = append(rows, render.EmptyLine(innerWidth))
	}
	return strings.Join(rows, "\n")
}

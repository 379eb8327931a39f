// Package divider provides the draggable divider widget between the two
// panes. It translates bubbletea key and mouse events into controller
// calls and surfaces the controller's callbacks as action messages.
package divider

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sash/internal/keymap"
	"github.com/llehouerou/sash/internal/split"
	"github.com/llehouerou/sash/internal/split/constraint"
	"github.com/llehouerou/sash/internal/ui"
	"github.com/llehouerou/sash/internal/ui/action"
	"github.com/llehouerou/sash/internal/ui/styles"
)

// Orientation is the divider's axis. A vertical divider separates panes
// side by side; a horizontal one separates panes stacked top and bottom.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation maps a config string onto an Orientation. Unknown
// values fall back to vertical.
func ParseOrientation(s string) Orientation {
	if s == "horizontal" {
		return Horizontal
	}
	return Vertical
}

// The terminal reports a single mouse pointer.
const pointerID = 0

// doubleTapWindow is the max delay between two clicks counted as one
// double tap.
const doubleTapWindow = 400 * time.Millisecond

const handleCells = 3

// eventQueue collects controller callbacks fired during an Update so the
// widget can hand them back as commands. Shared by pointer so the value
// copies bubbletea makes of the model all see the same queue.
type eventQueue struct {
	pending []action.Action
}

func (q *eventQueue) push(a action.Action) {
	q.pending = append(q.pending, a)
}

func (q *eventQueue) drain() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(q.pending))
	for i, a := range q.pending {
		cmds[i] = func() tea.Msg { return ActionMsg(a) }
	}
	q.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Model is the divider widget. Mouse coordinates fed to Update must be
// local to the split region the widget was sized with.
type Model struct {
	ui.Base
	ctrl        *split.Controller
	orientation Orientation
	thickness   int
	hitPadding  int
	resolver    *keymap.Resolver
	events      *eventQueue
	now         func() time.Time

	pressed  bool
	pressPos float64
	lastTap  time.Time
}

// New wires a widget to its controller. The controller's callbacks are
// claimed; the caller keeps ownership of controller and store lifetimes.
func New(ctrl *split.Controller, orientation Orientation, thickness, hitPadding int) Model {
	if thickness < 1 {
		thickness = 1
	}
	if hitPadding < 0 {
		hitPadding = 0
	}
	ev := &eventQueue{}
	ctrl.SetCallbacks(split.Callbacks{
		OnDragStart:    func(r float64) { ev.push(DragStarted{Ratio: r}) },
		OnDragEnd:      func(r float64) { ev.push(DragEnded{Ratio: r}) },
		OnRatioChanged: func(r float64) { ev.push(RatioChanged{Ratio: r}) },
		OnTap:          func(r float64) { ev.push(Tapped{Ratio: r}) },
		OnDoubleTap:    func(r float64) { ev.push(DoubleTapped{Ratio: r}) },
	})
	return Model{
		ctrl:        ctrl,
		orientation: orientation,
		thickness:   thickness,
		hitPadding:  hitPadding,
		resolver:    keymap.NewResolver(keymap.ByContext("divider")),
		events:      ev,
		now:         time.Now,
	}
}

// Controller returns the interaction controller driving this widget.
func (m Model) Controller() *split.Controller {
	return m.ctrl
}

// Orientation returns the divider's current axis.
func (m Model) Orientation() Orientation {
	return m.orientation
}

// Thickness returns the divider thickness in cells.
func (m Model) Thickness() int {
	return m.thickness
}

// SetSize stores the split region size and feeds the controller the
// extent available for the two panes.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.syncExtent()
}

// SetOrientation switches the divider's axis and recomputes the extent.
func (m *Model) SetOrientation(o Orientation) {
	m.orientation = o
	m.syncExtent()
}

// SetFocused tracks keyboard focus. Losing focus ends the keyboard
// adjustment session so the next adjustment snaps again.
func (m *Model) SetFocused(focused bool) {
	if m.IsFocused() && !focused {
		m.ctrl.Adjuster().EndSession()
	}
	m.Base.SetFocused(focused)
}

// Dragging reports whether a drag session is live.
func (m Model) Dragging() bool {
	return m.ctrl.Dragging()
}

func (m Model) total() int {
	if m.orientation == Horizontal {
		return m.Height()
	}
	return m.Width()
}

func (m *Model) syncExtent() {
	m.ctrl.SetExtent(constraint.Available(float64(m.total()), float64(m.thickness)))
}

// Sizes resolves the current ratio onto integer pane extents for the
// split region the widget was sized with.
func (m Model) Sizes() constraint.Split {
	avail := constraint.Available(float64(m.total()), float64(m.thickness))
	return constraint.ResolveCells(m.ctrl.Store().Value(), avail, m.ctrl.Config())
}

// Update handles key and mouse messages. Any controller callbacks they
// trigger come back as a command carrying action messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.IsFocused() {
			m.handleKey(msg.String())
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}
	return m, m.events.drain()
}

func (m Model) handleKey(key string) {
	adj := m.ctrl.Adjuster()
	switch m.resolver.Resolve(key) {
	case keymap.ActionStepStart:
		adj.Step(-1)
	case keymap.ActionStepEnd:
		adj.Step(1)
	case keymap.ActionPageStart:
		adj.Page(-1)
	case keymap.ActionPageEnd:
		adj.Page(1)
	case keymap.ActionJumpMin:
		adj.JumpMin()
	case keymap.ActionJumpMax:
		adj.JumpMax()
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	pos := float64(msg.X)
	if m.orientation == Horizontal {
		pos = float64(msg.Y)
	}

	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if m.inHitRegion(pos) {
			m.ctrl.PointerDown(pointerID, pos)
			m.pressed = true
			m.pressPos = pos
		}
	case msg.Action == tea.MouseActionMotion:
		switch {
		case m.ctrl.Dragging():
			m.ctrl.DragTo(pos)
		case m.pressed:
			// Cell-grid motion: any movement while pressed is a drag.
			m.ctrl.StartDrag(m.pressPos)
			m.ctrl.DragTo(pos)
		}
	case msg.Action == tea.MouseActionRelease:
		if m.ctrl.Dragging() {
			m.ctrl.EndDrag()
		} else if m.pressed {
			m.ctrl.PointerUp(pointerID)
			m.reportTap()
		}
		m.pressed = false
	}
	return m
}

// reportTap turns a press-release without motion into a tap, or a double
// tap when the previous tap was recent enough.
func (m *Model) reportTap() {
	now := m.now()
	if !m.lastTap.IsZero() && now.Sub(m.lastTap) <= doubleTapWindow {
		m.lastTap = time.Time{}
		m.ctrl.DoubleTap()
		return
	}
	m.lastTap = now
	m.ctrl.Tap()
}

// inHitRegion reports whether a main-axis position falls on the divider
// or within its hit padding.
func (m Model) inHitRegion(pos float64) bool {
	first := m.Sizes().First
	lo := first - float64(m.hitPadding)
	hi := first + float64(m.thickness) + float64(m.hitPadding)
	return pos >= lo && pos < hi
}

// View renders just the divider strip; the app places it between the
// panes.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	if m.orientation == Horizontal {
		return m.viewHorizontal()
	}
	return m.viewVertical()
}

func (m Model) viewVertical() string {
	t := styles.T()
	line := strings.Repeat("│", m.thickness)
	handle := strings.Repeat("┃", m.thickness)
	idle := lipgloss.NewStyle().Foreground(t.Border)

	height := m.Height()
	handleLen := min(handleCells, height)
	start := (height - handleLen) / 2

	var grad []lipgloss.Color
	if m.IsFocused() && !m.Dragging() {
		grad = styles.GradientColors(handleLen, t.Primary, t.Secondary)
	}

	rows := make([]string, height)
	for i := range height {
		if i < start || i >= start+handleLen {
			rows[i] = idle.Render(line)
			continue
		}
		switch {
		case m.Dragging():
			rows[i] = t.S().Active.Render(handle)
		case m.IsFocused():
			rows[i] = lipgloss.NewStyle().Foreground(grad[i-start]).Bold(true).Render(handle)
		default:
			rows[i] = idle.Render(handle)
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewHorizontal() string {
	t := styles.T()
	idle := lipgloss.NewStyle().Foreground(t.Border)

	width := m.Width()
	handleLen := min(2*handleCells, width)
	start := (width - handleLen) / 2

	handle := strings.Repeat("━", handleLen)
	var styled string
	switch {
	case m.Dragging():
		styled = t.S().Active.Render(handle)
	case m.IsFocused():
		styled = styles.ApplyBoldGradient(handle, t.Primary, t.Secondary)
	default:
		styled = idle.Render(handle)
	}

	row := idle.Render(strings.Repeat("─", start)) +
		styled +
		idle.Render(strings.Repeat("─", width-start-handleLen))

	rows := make([]string, m.thickness)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

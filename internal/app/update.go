package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/errmsg"
	"github.com/llehouerou/sash/internal/keymap"
	"github.com/llehouerou/sash/internal/split"
	"github.com/llehouerou/sash/internal/split/constraint"
	"github.com/llehouerou/sash/internal/state"
	"github.com/llehouerou/sash/internal/ui/action"
	"github.com/llehouerou/sash/internal/ui/divider"
	"github.com/llehouerou/sash/internal/ui/filepane"
	"github.com/llehouerou/sash/internal/ui/gotopopup"
	"github.com/llehouerou/sash/internal/ui/helppopup"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeComponents()
		return m, nil

	case RatioMsg:
		if !msg.OK {
			return m, nil
		}
		m.resizeComponents()
		return m, listenRatio(m.ratioCh)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
			m.statusIsErr = false
		}
		return m, nil

	case DirLoadedMsg:
		if msg.Err != nil {
			m.setStatus(errmsg.FormatWith(errmsg.OpFolderList, msg.Path, msg.Err), true)
			return m, clearStatusAfter(m.statusSeq)
		}
		m.files.SetEntries(msg.Path, msg.Entries)
		m.preview.Clear()
		return m, nil

	case FileLoadedMsg:
		if msg.Err != nil {
			m.setStatus(errmsg.FormatWith(errmsg.OpFileLoad, msg.Name, msg.Err), true)
			return m, clearStatusAfter(m.statusSeq)
		}
		m.preview.SetContent(msg.Path, msg.Name, msg.Size, msg.Data)
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activePopup != nil {
		p, cmd := m.activePopup.Update(msg)
		m.activePopup = p
		return m, cmd
	}

	key := msg.String()
	switch m.globalKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		m.cycleFocus()
		return m, nil
	case keymap.ActionToggleOrientation:
		m.toggleOrientation()
		return m, nil
	case keymap.ActionResetRatio:
		m.animateTo(m.cfg.Split.InitialRatio)
		return m, nil
	case keymap.ActionGotoRatio:
		return m.openGotoPopup()
	case keymap.ActionHelp:
		m.openHelpPopup()
		return m, nil
	}

	switch m.focus {
	case FocusFiles:
		if m.filesKeys.Resolve(key) == keymap.ActionParentDir {
			return m, m.loadParentDir()
		}
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(msg)
		return m, cmd
	case FocusDivider:
		var cmd tea.Cmd
		m.divider, cmd = m.divider.Update(msg)
		return m, cmd
	case FocusPreview:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.activePopup != nil {
		return m, nil
	}

	var cmds []tea.Cmd

	// The divider sees every mouse event: while a drag is live it must
	// keep receiving motion and the release wherever they land.
	var cmd tea.Cmd
	m.divider, cmd = m.divider.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// A release anywhere must never leave an orphaned drag behind, even
	// one owned by a divider this event never reached.
	if msg.Action == tea.MouseActionRelease {
		m.router.PointerUp(0)
	}

	if m.divider.Dragging() {
		m.resizeComponents()
		return m, tea.Batch(cmds...)
	}

	if paneMsg, target, ok := m.paneUnderPointer(msg); ok {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			m.setFocus(target)
		}
		switch target {
		case FocusFiles:
			m.files, cmd = m.files.Update(paneMsg)
		case FocusPreview:
			m.preview, cmd = m.preview.Update(paneMsg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// paneUnderPointer translates a mouse event into the coordinate space of
// the pane it lands on.
func (m Model) paneUnderPointer(msg tea.MouseMsg) (tea.MouseMsg, FocusTarget, bool) {
	s := m.divider.Sizes()
	first := int(s.First)
	offset := first + m.divider.Thickness()

	if m.divider.Orientation() == divider.Vertical {
		switch {
		case msg.X < first:
			return msg, FocusFiles, true
		case msg.X >= offset:
			msg.X -= offset
			return msg, FocusPreview, true
		}
		return msg, FocusDivider, false
	}

	switch {
	case msg.Y < first:
		return msg, FocusFiles, true
	case msg.Y >= offset:
		msg.Y -= offset
		return msg, FocusPreview, true
	}
	return msg, FocusDivider, false
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch act := msg.Action.(type) {
	case divider.DragStarted:
		m.setFocus(FocusDivider)
		m.resizeComponents()
		return m, nil

	case divider.RatioChanged:
		m.resizeComponents()
		m.saveLayout()
		return m, nil

	case divider.DragEnded:
		m.resizeComponents()
		m.saveLayout()
		return m, nil

	case divider.Tapped:
		m.setFocus(FocusDivider)
		return m, nil

	case divider.DoubleTapped:
		// The controller animates toward its configured target; the
		// ratio listener repaints as the steps land.
		return m, nil

	case filepane.Open:
		if act.Entry.IsDir {
			return m, loadDir(act.Entry.Path)
		}
		return m, loadFile(act.Entry.Path, act.Entry.Name)

	case filepane.Selected:
		if !act.Entry.IsDir {
			return m, loadFile(act.Entry.Path, act.Entry.Name)
		}
		return m, nil

	case gotopopup.Submit:
		m.activePopup = nil
		m.animateTo(act.Ratio)
		return m, nil

	case gotopopup.Close, helppopup.Close:
		m.activePopup = nil
		return m, nil

	default:
		_ = act
		return m, nil
	}
}

func (m *Model) toggleOrientation() {
	next := divider.Horizontal
	if m.divider.Orientation() == divider.Horizontal {
		next = divider.Vertical
	}
	m.divider.SetOrientation(next)
	m.resizeComponents()
	m.saveLayout()
}

// animateTo eases the ratio toward target through the constraint clamp.
// Repainting rides the ratio listener.
func (m *Model) animateTo(target float64) {
	ctrl := m.divider.Controller()
	target = constraint.ClampRatio(target, ctrl.Extent(), ctrl.Config())
	m.store.AnimateTo(target,
		time.Duration(m.cfg.Animation.DurationMs)*time.Millisecond,
		split.EaseInOutCubic,
		m.cfg.Animation.Steps)
	if m.stateMgr != nil {
		m.stateMgr.SaveLayout(state.LayoutState{
			Ratio:       target,
			Orientation: m.divider.Orientation().String(),
		})
	}
}

func (m *Model) loadParentDir() tea.Cmd {
	current := m.files.Path()
	parent := filepath.Dir(current)
	if parent == current {
		return nil
	}
	return loadDir(parent)
}

func (m Model) openGotoPopup() (tea.Model, tea.Cmd) {
	p := gotopopup.New(m.store.Value())
	p.SetSize(m.width, m.height)
	m.activePopup = p
	return m, m.activePopup.Init()
}

func (m *Model) openHelpPopup() {
	h := helppopup.New()
	h.SetContexts([]string{"global", "files", "divider", "preview"})
	h.SetSize(m.width, m.height)
	m.activePopup = &h
}

// Package app wires the two panes, the divider, and the modal popups
// into the root bubbletea model.
package app

import (
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/config"
	"github.com/llehouerou/sash/internal/errmsg"
	"github.com/llehouerou/sash/internal/keymap"
	"github.com/llehouerou/sash/internal/logger"
	"github.com/llehouerou/sash/internal/split"
	"github.com/llehouerou/sash/internal/state"
	"github.com/llehouerou/sash/internal/ui"
	"github.com/llehouerou/sash/internal/ui/divider"
	"github.com/llehouerou/sash/internal/ui/filepane"
	"github.com/llehouerou/sash/internal/ui/popup"
	"github.com/llehouerou/sash/internal/ui/preview"
)

// FocusTarget identifies which component owns keyboard input.
type FocusTarget int

const (
	FocusFiles FocusTarget = iota
	FocusDivider
	FocusPreview
)

func (f FocusTarget) String() string {
	switch f {
	case FocusDivider:
		return "divider"
	case FocusPreview:
		return "preview"
	default:
		return "files"
	}
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	stateMgr *state.Manager

	store   *split.Store
	router  *split.Router
	divider divider.Model
	files   filepane.Model
	preview preview.Model

	focus       FocusTarget
	activePopup popup.Popup

	globalKeys *keymap.Resolver
	filesKeys  *keymap.Resolver

	// ratioCh carries store changes made off the event loop (animation
	// steps) back in so the UI repaints.
	ratioCh     chan float64
	unbindRatio func()
	closeRatio  func()

	statusMsg   string
	statusIsErr bool
	statusSeq   int

	width  int
	height int
}

// New builds the interaction pipeline from configuration and, when a
// state manager is given, the previously saved layout.
func New(cfg *config.Config, stateMgr *state.Manager) (Model, error) {
	cc, err := cfg.Constraint()
	if err != nil {
		return Model{}, err
	}

	initialRatio := cfg.Split.InitialRatio
	orientation := cfg.Divider.Orientation
	if stateMgr != nil {
		if layout, err := stateMgr.GetLayout(); err != nil {
			logger.L().Warn("load saved layout", "error", err)
		} else if layout != nil {
			initialRatio = layout.Ratio
			orientation = layout.Orientation
		}
	}

	store := split.NewStore(initialRatio)

	opts := split.DefaultOptions()
	opts.Resizable = cfg.IsResizable()
	opts.KeyboardStep = cfg.Divider.KeyboardStep
	opts.PageStep = cfg.Divider.PageStep
	opts.SnapPoints = cfg.Split.SnapPoints
	opts.SnapTolerance = cfg.Split.SnapTolerance
	opts.DoubleTapTarget = cfg.Divider.DoubleTapRatio
	opts.AnimDuration = time.Duration(cfg.Animation.DurationMs) * time.Millisecond
	opts.AnimSteps = cfg.Animation.Steps
	if cfg.Divider.FallbackExtent > 0 {
		opts.FallbackExtent = cfg.Divider.FallbackExtent
	}

	router := split.SharedRouter()
	ctrl, err := split.NewController(store, router, cc, opts)
	if err != nil {
		store.Close()
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		stateMgr: stateMgr,
		store:    store,
		router:   router,
		divider: divider.New(ctrl, divider.ParseOrientation(orientation),
			cfg.Divider.Thickness, cfg.Divider.HitPadding),
		files:      filepane.New(),
		preview:    preview.New(),
		globalKeys: keymap.NewResolver(keymap.ByContext("global")),
		filesKeys:  keymap.NewResolver(keymap.ByContext("files")),
		ratioCh:    make(chan float64, 16),
	}

	ch := m.ratioCh
	m.closeRatio = sync.OnceFunc(func() { close(ch) })
	m.unbindRatio = store.OnChange(func(v float64) {
		// Drop the value when the loop is behind; a later one follows.
		select {
		case ch <- v:
		default:
		}
	})

	m.files.SetFocused(true)

	startPath := cfg.StartFolder
	if startPath == "" {
		if startPath, err = os.Getwd(); err != nil {
			startPath = string(os.PathSeparator)
		}
	}
	if entries, err := readDir(startPath); err != nil {
		m.setStatus(errmsg.Format(errmsg.OpFolderList, err), true)
	} else {
		m.files.SetEntries(startPath, entries)
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return listenRatio(m.ratioCh)
}

// Close tears down the interaction pipeline. Call once the program has
// exited.
func (m Model) Close() {
	if m.unbindRatio != nil {
		m.unbindRatio()
	}
	m.divider.Controller().Close()
	m.store.Close()
	// The closed store produces no more changes; closing the channel lets
	// the last pending listen command return instead of blocking forever.
	if m.closeRatio != nil {
		m.closeRatio()
	}
}

// Ratio returns the current divider ratio.
func (m Model) Ratio() float64 {
	return m.store.Value()
}

// Focus returns the component holding keyboard input.
func (m Model) Focus() FocusTarget {
	return m.focus
}

func (m *Model) setFocus(target FocusTarget) {
	if m.focus == target {
		return
	}
	m.focus = target
	m.files.SetFocused(target == FocusFiles)
	m.divider.SetFocused(target == FocusDivider)
	m.preview.SetFocused(target == FocusPreview)
}

func (m *Model) cycleFocus() {
	next := m.focus + 1
	if next > FocusPreview {
		next = FocusFiles
	}
	if next == FocusDivider && !m.cfg.IsResizable() {
		next = FocusPreview
	}
	m.setFocus(next)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusMsg = text
	m.statusIsErr = isErr
	m.statusSeq++
}

// saveLayout schedules a debounced persist of the current layout.
func (m *Model) saveLayout() {
	if m.stateMgr == nil {
		return
	}
	m.stateMgr.SaveLayout(state.LayoutState{
		Ratio:       m.store.Value(),
		Orientation: m.divider.Orientation().String(),
	})
}

// resizeComponents recomputes the pane geometry from the current ratio
// and window size.
func (m *Model) resizeComponents() {
	if m.width == 0 || m.height == 0 {
		return
	}
	mainHeight := m.height - ui.StatusBarHeight
	m.divider.SetSize(m.width, mainHeight)

	s := m.divider.Sizes()
	if m.divider.Orientation() == divider.Vertical {
		m.files.SetSize(int(s.First), mainHeight)
		m.preview.SetSize(int(s.Second), mainHeight)
	} else {
		m.files.SetSize(m.width, int(s.First))
		m.preview.SetSize(m.width, int(s.Second))
	}

	if m.activePopup != nil {
		m.activePopup.SetSize(m.width, m.height)
	}
}

package app

import (
	"github.com/llehouerou/sash/internal/ui/filepane"
)

// RatioMsg carries a ratio change observed on the store's change
// notifications. Animation steps run off the event loop, so without this
// message the UI would not repaint while an animation is in flight.
type RatioMsg struct {
	Ratio float64
	OK    bool // false when the store closed and the listener should stop
}

// ClearStatusMsg clears the status line when its generation still
// matches, so a newer message is not wiped by an old timer.
type ClearStatusMsg struct {
	Seq int
}

// DirLoadedMsg delivers a directory listing for the files pane.
type DirLoadedMsg struct {
	Path    string
	Entries []filepane.Entry
	Err     error
}

// FileLoadedMsg delivers file content for the preview pane.
type FileLoadedMsg struct {
	Path string
	Name string
	Size int64
	Data []byte
	Err  error
}

package app

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/ui/filepane"
)

// maxPreviewBytes caps how much of a file the preview command reads.
const maxPreviewBytes = 256 * 1024

// statusTTL is how long a transient status message stays visible.
const statusTTL = 4 * time.Second

// listenRatio waits for the next off-loop ratio change.
func listenRatio(ch <-chan float64) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		return RatioMsg{Ratio: v, OK: ok}
	}
}

// loadDir lists a directory in the background.
func loadDir(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := readDir(path)
		return DirLoadedMsg{Path: path, Entries: entries, Err: err}
	}
}

// loadFile reads the head of a file for previewing.
func loadFile(path, name string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return FileLoadedMsg{Path: path, Name: name, Err: err}
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return FileLoadedMsg{Path: path, Name: name, Err: err}
		}

		data, err := io.ReadAll(io.LimitReader(f, maxPreviewBytes))
		if err != nil {
			return FileLoadedMsg{Path: path, Name: name, Err: err}
		}
		return FileLoadedMsg{Path: path, Name: name, Size: info.Size(), Data: data}
	}
}

// clearStatusAfter expires the status line generation seq.
func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// readDir lists a directory sorted directories-first, then by name.
func readDir(path string) ([]filepane.Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]filepane.Entry, 0, len(dirents))
	for _, d := range dirents {
		e := filepane.Entry{
			Name:  d.Name(),
			Path:  filepath.Join(path, d.Name()),
			IsDir: d.IsDir(),
		}
		if !e.IsDir {
			if info, err := d.Info(); err == nil {
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b filepane.Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

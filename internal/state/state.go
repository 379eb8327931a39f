// Package state persists the split layout (ratio and orientation) in a
// small SQLite database under the XDG data directory. Saves are debounced
// so continuous dragging does not hammer the disk; a pending save is
// flushed on Close.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "sash"
	dbFileName   = "sash.db"
	saveDebounce = 500 * time.Millisecond
)

// LayoutState is the persisted divider layout.
type LayoutState struct {
	Ratio       float64 // split ratio in [0,1]
	Orientation string  // "vertical" or "horizontal"
}

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *LayoutState
}

// Open opens (creating if needed) the state database at its XDG location.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return openAt(dbPath)
}

// openAt opens the database at an explicit path. Tests use it with a
// temp directory or ":memory:".
func openAt(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveLayout(m.db, *pending)
	}

	return m.db.Close()
}

// GetLayout returns the saved layout, or nil when nothing was saved yet.
// An out-of-range saved ratio is clamped rather than rejected.
func (m *Manager) GetLayout() (*LayoutState, error) {
	return getLayout(m.db)
}

// SaveLayout schedules a debounced write of the layout. The last call
// within the debounce window wins.
func (m *Manager) SaveLayout(s LayoutState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveLayout(m.db, *pending)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

package cursor

import tea "github.com/charmbracelet/bubbletea"

// MouseResult describes what a mouse event did to the cursor.
type MouseResult int

const (
	// MouseIgnored means the event was not for this list.
	MouseIgnored MouseResult = iota
	// MouseScrolled means a wheel event moved the cursor.
	MouseScrolled
	// MouseClicked means a left click selected a row.
	MouseClicked
)

// WheelStep is how many rows one wheel notch moves the cursor.
const WheelStep = 3

// HandleMouse handles wheel scrolling and left-click selection. The msg
// coordinates must already be local to the component; headerRows is the
// number of rows above the first list row (border + header). The returned
// index is the clicked item, or -1 when no row was selected.
func (c *Cursor) HandleMouse(msg tea.MouseMsg, listLen, height, headerRows int) (MouseResult, int) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		c.Move(-WheelStep, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonWheelDown:
		c.Move(WheelStep, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return MouseIgnored, -1
		}
		row := msg.Y - headerRows
		if row < 0 || row >= height {
			return MouseIgnored, -1
		}
		idx := c.offset + row
		if idx >= listLen {
			return MouseIgnored, -1
		}
		c.Jump(idx, listLen, height)
		return MouseClicked, idx
	default:
		return MouseIgnored, -1
	}
}

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sash/internal/ui/divider"
	"github.com/llehouerou/sash/internal/ui/popup"
	"github.com/llehouerou/sash/internal/ui/render"
	"github.com/llehouerou/sash/internal/ui/styles"
)

// meterWidth caps the status bar ratio meter.
const meterWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var main string
	if m.divider.Orientation() == divider.Vertical {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			m.files.View(), m.divider.View(), m.preview.View())
	} else {
		main = lipgloss.JoinVertical(lipgloss.Left,
			m.files.View(), m.divider.View(), m.preview.View())
	}

	view := main + "\n" + m.renderStatusBar()

	if m.activePopup != nil {
		overlay := popup.RenderBordered(m.activePopup.View(), m.width, m.height, m.activePopup.Sizing())
		view = popup.Compose(view, overlay, m.width, m.height)
	}

	return enforceHeight(view, m.height)
}

func (m Model) renderStatusBar() string {
	t := styles.T()

	if m.statusMsg != "" {
		style := t.S().Muted
		if m.statusIsErr {
			style = t.S().Error
		}
		return style.Render(render.TruncateAndPad(m.statusMsg, m.width))
	}

	left := fmt.Sprintf("%s | %s", m.focus, m.divider.Orientation())
	if m.store.Dragging() {
		left = "dragging | " + left
	}

	meter := render.Meter(m.store.Value(), min(meterWidth, m.width/3))
	row := render.Row(render.Truncate(left, m.width-lipgloss.Width(meter)-1), meter, m.width)

	style := t.S().Muted
	if m.store.Dragging() {
		style = t.S().Active
	}
	return style.Render(row)
}

// enforceHeight pads or truncates the view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}

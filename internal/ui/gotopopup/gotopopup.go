// Package gotopopup provides a small input popup that jumps the divider
// to a typed ratio. Input is a percentage (e.g. "62") or a fraction
// (e.g. "0.62").
package gotopopup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/ui"
	"github.com/llehouerou/sash/internal/ui/popup"
	"github.com/llehouerou/sash/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model holds the state for the go-to-ratio popup.
type Model struct {
	ui.Base
	input  textinput.Model
	errMsg string
}

// New creates a new go-to-ratio popup with the input focused.
func New(current float64) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%.0f", current*100)
	ti.Prompt = "ratio % > "
	ti.CharLimit = 8
	ti.Width = 16
	ti.Focus()
	return &Model{input: ti}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		case "enter":
			ratio, err := parseRatio(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return ActionMsg(Submit{Ratio: ratio}) }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.errMsg != "" {
		m.errMsg = ""
	}
	return m, cmd
}

// Sizing implements popup.Popup.
func (m *Model) Sizing() popup.SizeConfig {
	return popup.SizeAuto
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Go to ratio"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(t.S().Error.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render("enter apply · esc cancel"))
	return b.String()
}

// parseRatio accepts "62", "62%", or "0.62" and returns a ratio in [0,1].
func parseRatio(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, fmt.Errorf("enter a percentage")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	// Values above 1 are percentages.
	if v > 1 {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("ratio must be between 0 and 100%%")
	}
	return v, nil
}

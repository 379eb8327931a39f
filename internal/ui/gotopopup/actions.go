package gotopopup

import (
	"github.com/llehouerou/sash/internal/ui/action"
)

// Close signals the popup should close without applying.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "gotopopup.close" }

// Submit carries the parsed target ratio.
type Submit struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a Submit) ActionType() string { return "gotopopup.submit" }

// ActionMsg creates an action.Msg for a gotopopup action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "gotopopup", Action: a}
}

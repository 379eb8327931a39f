package helppopup

import (
	"github.com/llehouerou/sash/internal/ui/action"
)

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helppopup.close" }

// ActionMsg creates an action.Msg for a helppopup action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helppopup", Action: a}
}

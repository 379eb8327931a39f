package filepane

import (
	"github.com/llehouerou/sash/internal/ui/action"
)

// Open signals the user activated an entry (enter on it).
type Open struct {
	Entry Entry
}

// ActionType implements action.Action.
func (a Open) ActionType() string { return "filepane.open" }

// Selected signals the cursor moved to a different entry.
type Selected struct {
	Entry Entry
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "filepane.selected" }

// ActionMsg creates an action.Msg for a filepane action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "filepane", Action: a}
}

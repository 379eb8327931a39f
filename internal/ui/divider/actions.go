package divider

import (
	"github.com/llehouerou/sash/internal/ui/action"
)

// DragStarted signals a drag session opened on the divider.
type DragStarted struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a DragStarted) ActionType() string { return "divider.drag_started" }

// DragEnded signals a drag session closed, with the settled ratio.
type DragEnded struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a DragEnded) ActionType() string { return "divider.drag_ended" }

// RatioChanged signals an accepted ratio change from dragging, keyboard
// adjustment, or snapping.
type RatioChanged struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a RatioChanged) ActionType() string { return "divider.ratio_changed" }

// Tapped signals a single click on the divider handle.
type Tapped struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a Tapped) ActionType() string { return "divider.tapped" }

// DoubleTapped signals a double click on the divider handle.
type DoubleTapped struct {
	Ratio float64
}

// ActionType implements action.Action.
func (a DoubleTapped) ActionType() string { return "divider.double_tapped" }

// ActionMsg creates an action.Msg for a divider action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "divider", Action: a}
}

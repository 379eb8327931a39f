package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit              Action = "quit"
	ActionSwitchFocus       Action = "switch_focus"
	ActionToggleOrientation Action = "toggle_orientation"
	ActionResetRatio        Action = "reset_ratio"
	ActionGotoRatio         Action = "goto_ratio"
	ActionHelp              Action = "help"

	// File pane actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionEnter     Action = "enter"
	ActionParentDir Action = "parent_dir"

	// Divider actions
	ActionStepStart Action = "step_start"
	ActionStepEnd   Action = "step_end"
	ActionPageStart Action = "page_start"
	ActionPageEnd   Action = "page_end"
	ActionJumpMin   Action = "jump_min"
	ActionJumpMax   Action = "jump_max"

	// Preview pane actions
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
)

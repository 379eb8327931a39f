// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding: the keys that trigger it, the
// action it resolves to, and the context it belongs to for help display.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "files", "divider", "preview"
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Cycle focus (files, divider, preview)", "global"},
	{[]string{"o"}, ActionToggleOrientation, "Toggle split orientation", "global"},
	{[]string{"r"}, ActionResetRatio, "Animate back to the initial ratio", "global"},
	{[]string{"g"}, ActionGotoRatio, "Go to a specific ratio", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},

	// File pane
	{[]string{"j", "down"}, ActionMoveDown, "Move down", "files"},
	{[]string{"k", "up"}, ActionMoveUp, "Move up", "files"},
	{[]string{"home"}, ActionJumpStart, "Jump to first entry", "files"},
	{[]string{"end"}, ActionJumpEnd, "Jump to last entry", "files"},
	{[]string{"enter"}, ActionEnter, "Open directory / preview file", "files"},
	{[]string{"backspace"}, ActionParentDir, "Go to parent directory", "files"},

	// Divider, while it holds focus
	{[]string{"left", "h"}, ActionStepStart, "Nudge divider toward start", "divider"},
	{[]string{"right", "l"}, ActionStepEnd, "Nudge divider toward end", "divider"},
	{[]string{"shift+left", "H"}, ActionPageStart, "Page divider toward start", "divider"},
	{[]string{"shift+right", "L"}, ActionPageEnd, "Page divider toward end", "divider"},
	{[]string{"home"}, ActionJumpMin, "Divider to minimum ratio", "divider"},
	{[]string{"end"}, ActionJumpMax, "Divider to maximum ratio", "divider"},

	// Preview pane
	{[]string{"j", "down"}, ActionScrollDown, "Scroll down", "preview"},
	{[]string{"k", "up"}, ActionScrollUp, "Scroll up", "preview"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Package menu defines the menu bar catalogue and the small state machine
// that tracks whether the bar or a dropdown has focus.
package menu

// Action identifies what a menu item does when activated. Dispatch lives
// with the caller; the state machine only hands the action back.
type Action int

const (
	ActionNone Action = iota

	ActionSaveConfig
	ActionLoadConfig
	ActionExit

	ActionNewSession
	ActionDuplicateSession
	ActionRenameSession
	ActionCloseSession

	ActionLayoutSingle
	ActionLayoutSplitHorizontal
	ActionLayoutSplitVertical
	ActionLayoutGrid2x2
	ActionNextPane
	ActionPrevPane

	ActionToggleTimestamps

	ActionShortcuts
	ActionAbout
)

// Item is one dropdown entry. Separators render as rules and refuse
// activation.
type Item struct {
	Label     string
	Action    Action
	Separator bool
}

func separator() Item {
	return Item{Separator: true}
}

// Menu is one titled dropdown on the bar.
type Menu struct {
	Title string
	Items []Item
}

// Default returns the application menu bar.
func Default() []Menu {
	return []Menu{
		{
			Title: "File",
			Items: []Item{
				{Label: "Save Config", Action: ActionSaveConfig},
				{Label: "Load Config", Action: ActionLoadConfig},
				separator(),
				{Label: "Exit", Action: ActionExit},
			},
		},
		{
			Title: "Session",
			Items: []Item{
				{Label: "New", Action: ActionNewSession},
				{Label: "Duplicate", Action: ActionDuplicateSession},
				{Label: "Rename", Action: ActionRenameSession},
				separator(),
				{Label: "Close", Action: ActionCloseSession},
			},
		},
		{
			Title: "View",
			Items: []Item{
				{Label: "Single", Action: ActionLayoutSingle},
				{Label: "Split Horizontal", Action: ActionLayoutSplitHorizontal},
				{Label: "Split Vertical", Action: ActionLayoutSplitVertical},
				{Label: "Grid 2x2", Action: ActionLayoutGrid2x2},
				separator(),
				{Label: "Next Pane", Action: ActionNextPane},
				{Label: "Prev Pane", Action: ActionPrevPane},
			},
		},
		{
			Title: "Settings",
			Items: []Item{
				{Label: "Toggle Timestamps", Action: ActionToggleTimestamps},
			},
		},
		{
			Title: "Help",
			Items: []Item{
				{Label: "Shortcuts", Action: ActionShortcuts},
				separator(),
				{Label: "About", Action: ActionAbout},
			},
		},
	}
}

package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Entry actions
type ToggleFavoriteAction struct {
	Title string
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type OpenEntryAction struct {
	Title string
}

func (a OpenEntryAction) Type() string { return "open_entry" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

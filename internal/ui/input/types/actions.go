package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleAction struct {
	Index int // -1 for current
}

func (a ToggleAction) Type() string { return "toggle" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

type ToggleCategoryAction struct {
	Category string
}

func (a ToggleCategoryAction) Type() string { return "toggle_category" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Note actions
type SubmitNoteAction struct {
	Text string
}

func (a SubmitNoteAction) Type() string { return "submit_note" }

type NoteEditedAction struct {
	Text string
}

func (a NoteEditedAction) Type() string { return "note_edited" }

// Command actions
type ShowSummaryAction struct{}

func (a ShowSummaryAction) Type() string { return "show_summary" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

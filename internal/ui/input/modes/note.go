package modes

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/ui/input/types"
)

// NoteMode edits the free-text note in a textarea. Esc keeps the text and
// returns to normal mode; everything else goes to the textarea.
type NoteMode struct {
	textArea *textarea.Model
}

func NewNoteMode(ta *textarea.Model) *NoteMode {
	return &NoteMode{textArea: ta}
}

func (m *NoteMode) Name() string {
	return "note"
}

func (m *NoteMode) Enter(ctx types.Context) []types.Action {
	if m.textArea != nil {
		m.textArea.Focus()
		m.textArea.CursorEnd()
	}
	return nil
}

func (m *NoteMode) Exit(ctx types.Context) []types.Action {
	if m.textArea != nil {
		m.textArea.Blur()
	}
	return nil
}

func (m *NoteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		text := ""
		if m.textArea != nil {
			text = m.textArea.Value()
		}
		return []types.Action{
			types.SubmitNoteAction{Text: text},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Let the main handler feed the key to the textarea
	return nil, false
}

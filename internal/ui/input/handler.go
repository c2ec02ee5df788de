package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/ui/input/modes"
	"focusdeck/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	noteArea    *textarea.Model // shared textarea for the note mode
}

func New(noteLimit int) *Handler {
	ta := textarea.New()
	ta.Placeholder = "Anything the host should know?"
	ta.CharLimit = noteLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(4)

	h := &Handler{
		currentMode: types.ModeNormal,
		noteArea:    &ta,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeNote] = modes.NewNoteMode(h.noteArea)
	h.modes[types.ModeClearConfirm] = modes.NewClearConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && h.currentMode != types.ModeNote {
		return nil, nil
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}

			if h.currentMode == types.ModeNote {
				cmd = textarea.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in note mode feed the textarea
	if h.currentMode == types.ModeNote && !consumed {
		var taCmd tea.Cmd
		*h.noteArea, taCmd = h.noteArea.Update(msg)
		cmd = taCmd
		allActions = append(allActions, types.NoteEditedAction{Text: h.noteArea.Value()})
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for the textarea (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode == types.ModeNote {
		var cmd tea.Cmd
		*h.noteArea, cmd = h.noteArea.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// NoteArea returns the shared note textarea
func (h *Handler) NoteArea() *textarea.Model {
	return h.noteArea
}

// SetNote seeds the textarea with saved note text
func (h *Handler) SetNote(text string) {
	h.noteArea.SetValue(text)
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.noteArea.Blur()
}

package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc clears the selection if there is one
		if ctx.HasSelection() {
			return []types.Action{types.ClearAllAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeySpace, tea.KeyEnter:
		// Space/Enter toggles the category under the cursor as a block,
		// or the single item otherwise
		if ctx.IsOnCategory() {
			return []types.Action{types.ToggleCategoryAction{Category: ctx.CurrentCategory()}}, true
		}
		if ctx.CurrentItemID() != "" {
			return []types.Action{types.ToggleAction{Index: -1}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "a":
		return []types.Action{types.SelectAllAction{}}, true

	case "A":
		// Ask before dropping a non-trivial selection
		if ctx.SelectedCount() > 1 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
		}
		if ctx.HasSelection() {
			return []types.Action{types.ClearAllAction{}}, true
		}
		return nil, false

	case "n":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNote}}, true

	case "s":
		return []types.Action{types.ShowSummaryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/ui/input/types"
)

// ClearConfirmMode asks for confirmation before clearing the selection
type ClearConfirmMode struct{}

func NewClearConfirmMode() *ClearConfirmMode {
	return &ClearConfirmMode{}
}

func (m *ClearConfirmMode) Name() string {
	return "clear-confirm"
}

func (m *ClearConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClearConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClearConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.ClearAllAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, false
}

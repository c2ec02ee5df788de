package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/config"
	"focusdeck/internal/eventbus"
	"focusdeck/internal/planner"
	"focusdeck/internal/selection"
	"focusdeck/internal/textmetrics"
	"focusdeck/internal/ui/input"
	inputtypes "focusdeck/internal/ui/input/types"
	"focusdeck/internal/ui/views"
)

// flashDuration is how long a just-toggled item stays highlighted
const flashDuration = 300 * time.Millisecond

// Model is the Bubble Tea model for the planner
type Model struct {
	cfg       *config.Config
	configSvc config.ConfigService
	bus       eventbus.EventBus
	board     *planner.Board
	sel       *selection.Service

	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	pager        *PagerOps
	program      *tea.Program

	keys keyMap
	help help.Model

	rows           []views.Row
	cursor         int
	viewportOffset int
	viewportHeight int
	width          int
	height         int

	noteText      string
	flashUntil    map[string]time.Time
	statusMessage string
}

// NewModel creates the UI model and seeds it from configuration
func NewModel(cfg *config.Config, configSvc config.ConfigService, board *planner.Board, sel *selection.Service, bus eventbus.EventBus) *Model {
	m := &Model{
		cfg:            cfg,
		configSvc:      configSvc,
		bus:            bus,
		board:          board,
		sel:            sel,
		inputHandler:   input.New(cfg.Note.MaxLength),
		renderer:       views.NewRenderer(),
		helpRender:     NewHelpRenderer(),
		pager:          NewPagerOps(),
		keys:           newKeyMap(),
		help:           help.New(),
		viewportHeight: 20, // updated on first WindowSizeMsg
		flashUntil:     make(map[string]time.Time),
	}

	m.rows = buildRows(board, cfg.UISettings.ShowCategories)

	// Restore saved state; identifiers no longer in the catalog are dropped
	if len(cfg.Selected) > 0 {
		var restore []string
		for _, id := range cfg.Selected {
			if board.Item(id) != nil {
				restore = append(restore, id)
			}
		}
		sel.SelectAll(restore)
	}
	if cfg.Note.Text != "" {
		m.noteText = cfg.Note.Text
		m.inputHandler.SetNote(cfg.Note.Text)
	}

	// Start on the first item row, not a category header
	for i, row := range m.rows {
		if row.Kind == views.RowItem {
			m.cursor = i
			break
		}
	}

	return m
}

// SetProgram wires the running program for terminal handover to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// buildRows flattens the catalog into display rows
func buildRows(board *planner.Board, showCategories bool) []views.Row {
	items := board.Items()

	if !showCategories {
		rows := make([]views.Row, 0, len(items))
		for i := range items {
			rows = append(rows, views.Row{Kind: views.RowItem, Item: &items[i]})
		}
		return rows
	}

	var rows []views.Row
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		rows = append(rows, views.Row{Kind: views.RowCategory, Category: item.Category})
		for i := range items {
			if items[i].Category == item.Category {
				rows = append(rows, views.Row{Kind: views.RowItem, Item: &items[i], Indent: 1})
			}
		}
	}
	return rows
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashExpiredMsg:
		now := time.Time(msg)
		for id, until := range m.flashUntil {
			if !now.Before(until) {
				delete(m.flashUntil, id)
			}
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case summaryPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Pager error: %v", msg.err)
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Pager error: %v", msg.err)
		}

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// handleEvent reflects domain events in the status line
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SelectionChangedEvent:
		m.statusMessage = fmt.Sprintf("%d selected", e.Total)
	case eventbus.AllSelectedEvent:
		m.statusMessage = fmt.Sprintf("Selected %d items", e.Total)
	case eventbus.SelectionClearedEvent:
		m.statusMessage = "Selection cleared"
	case eventbus.ConfigSavedEvent:
		m.statusMessage = fmt.Sprintf("Saved %s", e.Path)
	case eventbus.ErrorEvent:
		m.statusMessage = e.Message
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
		case "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
		case "home":
			m.cursor = 0
			m.ensureCursorVisible()
		case "end":
			if len(m.rows) > 0 {
				m.cursor = len(m.rows) - 1
			}
			m.ensureCursorVisible()
		case "pageup":
			m.cursor -= m.viewportHeight
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.ensureCursorVisible()
		case "pagedown":
			m.cursor += m.viewportHeight
			if m.cursor > len(m.rows)-1 {
				m.cursor = len(m.rows) - 1
			}
			m.ensureCursorVisible()
		}

	case inputtypes.ToggleAction:
		index := a.Index
		if index < 0 {
			index = m.cursor
		}
		ctx := &modelContext{m: m}
		if id := ctx.ItemIDAt(index); id != "" {
			return m.toggleItem(id)
		}

	case inputtypes.ToggleCategoryAction:
		return m.toggleCategory(a.Category)

	case inputtypes.SelectAllAction:
		m.board.SelectAllItems()

	case inputtypes.ClearAllAction:
		m.board.ClearAllItems()

	case inputtypes.NoteEditedAction:
		m.setNote(a.Text)

	case inputtypes.SubmitNoteAction:
		m.setNote(a.Text)

	case inputtypes.ShowSummaryAction:
		return m.showSummaryCmd()

	case inputtypes.ToggleHelpAction:
		return m.showHelpCmd()

	case inputtypes.QuitAction:
		if !a.Force {
			m.autosave()
		}
		return tea.Quit
	}

	return nil
}

// toggleItem flips one item and schedules the flash clear
func (m *Model) toggleItem(id string) tea.Cmd {
	nowSelected := m.board.ToggleItem(id)

	label := id
	if item := m.board.Item(id); item != nil {
		label = item.Label
	}
	if nowSelected {
		m.statusMessage = fmt.Sprintf("Added %q", label)
	} else {
		m.statusMessage = fmt.Sprintf("Removed %q", label)
	}

	m.flashUntil[id] = time.Now().Add(flashDuration)
	return tea.Tick(flashDuration, func(t time.Time) tea.Msg {
		return flashExpiredMsg(t)
	})
}

// toggleCategory selects every item in the category, or deselects them
// all when they are already all selected
func (m *Model) toggleCategory(category string) tea.Cmd {
	var ids []string
	for _, item := range m.board.Items() {
		if item.Category == category {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	allSelected := true
	for _, id := range ids {
		if !m.sel.IsSelected(id) {
			allSelected = false
			break
		}
	}

	if allSelected {
		m.sel.Remove(ids)
	} else {
		m.sel.SelectAll(ids)
	}
	return nil
}

func (m *Model) setNote(text string) {
	if text == m.noteText {
		return
	}
	m.noteText = text
	m.bus.Publish(eventbus.NoteChangedEvent{Length: textmetrics.CountRunes(text)})
}

// autosave writes the selection and note back to config
func (m *Model) autosave() {
	if !m.cfg.UISettings.AutosaveOnExit {
		return
	}

	selected := m.sel.SelectedIDs()
	sort.Strings(selected)
	m.cfg.Selected = selected
	m.cfg.Note.Text = m.noteText

	if err := m.configSvc.Save(m.cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// showSummaryCmd pages the reservation summary with ov
func (m *Model) showSummaryCmd() tea.Cmd {
	content := m.buildSummaryContent()
	return func() tea.Msg {
		err := m.pager.ShowInPager(content)
		return summaryPagerMsg{err: err}
	}
}

// showHelpCmd pages the help content with ov
func (m *Model) showHelpCmd() tea.Cmd {
	content := m.helpRender.renderHelpContent()
	return func() tea.Msg {
		err := m.pager.ShowInPager(content)
		return helpPagerMsg{err: err}
	}
}

// buildSummaryContent renders the current reservation as plain text
func (m *Model) buildSummaryContent() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — reservation summary\n\n", m.cfg.Title)

	items := m.board.SelectedItems()
	if len(items) == 0 {
		b.WriteString("No items selected.\n")
	} else {
		fmt.Fprintf(&b, "Selected items (%d):\n", len(items))
		lastCategory := "\x00"
		for _, item := range items {
			if m.cfg.UISettings.ShowCategories && item.Category != lastCategory {
				lastCategory = item.Category
				name := item.Category
				if name == "" {
					name = "Other"
				}
				fmt.Fprintf(&b, "\n  %s\n", name)
			}
			fmt.Fprintf(&b, "    - %s\n", item.Label)
		}
	}

	if m.noteText != "" {
		fmt.Fprintf(&b, "\nNote:\n%s\n", m.noteText)
	}

	return b.String()
}

func (m *Model) updateViewportHeight() {
	// Leave room for the title, note box, status and help lines
	chrome := 12
	if m.inputHandler.CurrentMode() == inputtypes.ModeNote {
		chrome += m.inputHandler.NoteArea().Height()
	}
	m.viewportHeight = m.height - chrome
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.viewportOffset {
		m.viewportOffset = m.cursor
	}
	if m.cursor >= m.viewportOffset+m.viewportHeight {
		m.viewportOffset = m.cursor - m.viewportHeight + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// flashing returns the identifiers whose toggle flash is still live
func (m *Model) flashing() map[string]bool {
	now := time.Now()
	result := make(map[string]bool, len(m.flashUntil))
	for id, until := range m.flashUntil {
		if now.Before(until) {
			result[id] = true
		}
	}
	return result
}

// selectedSet snapshots the selection as a lookup map for rendering
func (m *Model) selectedSet() map[string]bool {
	result := make(map[string]bool, m.sel.Count())
	for _, id := range m.sel.SelectedIDs() {
		result[id] = true
	}
	return result
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	editing := m.inputHandler.CurrentMode() == inputtypes.ModeNote
	noteView := ""
	noteText := m.noteText
	if editing {
		area := m.inputHandler.NoteArea()
		noteView = area.View()
		noteText = area.Value()
	}

	state := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Title:           m.cfg.Title,
		Rows:            m.rows,
		CursorIndex:     m.cursor,
		Selected:        m.selectedSet(),
		Flashing:        m.flashing(),
		CatalogTotal:    len(m.board.Items()),
		ViewportOffset:  m.viewportOffset,
		ViewportHeight:  m.viewportHeight,
		NoteText:        noteText,
		NoteLimit:       m.cfg.Note.MaxLength,
		EditingNote:     editing,
		NoteView:        noteView,
		ConfirmingClear: m.inputHandler.CurrentMode() == inputtypes.ModeClearConfirm,
		StatusMessage:   m.statusMessage,
		HelpModel:       m.help,
		Keys:            m.keys,
	}

	return m.renderer.Render(state)
}

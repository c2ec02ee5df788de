package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"focusdeck/internal/domain"
	"focusdeck/internal/textmetrics"
)

// RowKind distinguishes the flattened display rows
type RowKind int

const (
	RowCategory RowKind = iota
	RowItem
)

// Row is one display line in the item list
type Row struct {
	Kind     RowKind
	Category string
	Item     *domain.FocusItem
	Indent   int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Title           string
	Rows            []Row
	CursorIndex     int
	Selected        map[string]bool
	Flashing        map[string]bool
	CatalogTotal    int
	ViewportOffset  int
	ViewportHeight  int
	NoteText        string
	NoteLimit       int
	EditingNote     bool
	NoteView        string // rendered textarea, only when editing
	ConfirmingClear bool
	StatusMessage   string
	HelpModel       help.Model
	Keys            help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	itemRender *ItemRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		itemRender: NewItemRenderer(styles),
	}
}

// Styles exposes the style set for callers that render outside the main view
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title line with the live selection counter
	title := r.styles.Title.Render(state.Title)
	counter := r.styles.Counter.Render(fmt.Sprintf("%d/%d selected", countSelected(state), state.CatalogTotal))
	content.WriteString(title + "  " + counter)
	content.WriteString("\n")

	// Item list window
	content.WriteString(r.renderRows(state))

	// Note field with its character counter
	content.WriteString("\n")
	content.WriteString(r.renderNote(state))

	// Confirm prompt / status line
	if state.ConfirmingClear {
		content.WriteString("\n")
		content.WriteString(r.styles.Confirm.Render("Clear all selected items? (y/n)"))
	} else if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	// Footer help
	if state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderRows(state ViewState) string {
	var lines []string

	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + state.ViewportHeight
	if end > len(state.Rows) || state.ViewportHeight <= 0 {
		end = len(state.Rows)
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}

	for i := start; i < end; i++ {
		row := state.Rows[i]
		isCursor := i == state.CursorIndex

		switch row.Kind {
		case RowCategory:
			selected, total := categoryCounts(state, row.Category)
			lines = append(lines, r.itemRender.RenderCategory(row.Category, selected, total, isCursor))
		case RowItem:
			item := row.Item
			lines = append(lines, r.itemRender.RenderItem(
				item,
				isCursor,
				item != nil && state.Selected[item.ID],
				item != nil && state.Flashing[item.ID],
				row.Indent,
			))
		}
	}

	if end < len(state.Rows) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Rows)-end)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderNote(state ViewState) string {
	length := textmetrics.CountRunes(state.NoteText)
	severity := textmetrics.Classify(length, state.NoteLimit)
	counter := r.styles.CounterStyle(severity).Render(textmetrics.Format(length, state.NoteLimit))

	header := r.styles.Dim.Render("Note") + " " + counter

	if state.EditingNote {
		return header + "\n" + r.styles.NoteBox.Render(state.NoteView)
	}

	preview := state.NoteText
	if preview == "" {
		preview = r.styles.Dim.Render("(press n to add a note)")
	}
	return header + "\n" + preview
}

func countSelected(state ViewState) int {
	return len(state.Selected)
}

func categoryCounts(state ViewState, category string) (selected, total int) {
	for _, row := range state.Rows {
		if row.Kind != RowItem || row.Item == nil || row.Item.Category != category {
			continue
		}
		total++
		if state.Selected[row.Item.ID] {
			selected++
		}
	}
	return selected, total
}

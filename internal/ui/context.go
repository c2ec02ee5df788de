package ui

import (
	"focusdeck/internal/ui/views"
)

// modelContext gives the input handler read-only access to model state
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int {
	return c.m.cursor
}

func (c *modelContext) TotalRows() int {
	return len(c.m.rows)
}

func (c *modelContext) ItemIDAt(index int) string {
	if index < 0 || index >= len(c.m.rows) {
		return ""
	}
	row := c.m.rows[index]
	if row.Kind != views.RowItem || row.Item == nil {
		return ""
	}
	return row.Item.ID
}

func (c *modelContext) CurrentItemID() string {
	return c.ItemIDAt(c.m.cursor)
}

func (c *modelContext) IsOnCategory() bool {
	if c.m.cursor < 0 || c.m.cursor >= len(c.m.rows) {
		return false
	}
	return c.m.rows[c.m.cursor].Kind == views.RowCategory
}

func (c *modelContext) CurrentCategory() string {
	if !c.IsOnCategory() {
		return ""
	}
	return c.m.rows[c.m.cursor].Category
}

func (c *modelContext) HasSelection() bool {
	return c.m.sel.HasSelection()
}

func (c *modelContext) SelectedCount() int {
	return c.m.sel.Count()
}

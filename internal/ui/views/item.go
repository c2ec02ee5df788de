package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focusdeck/internal/domain"
)

// ItemRenderer handles rendering of focus item rows
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// RenderItem renders one focus item line
func (r *ItemRenderer) RenderItem(item *domain.FocusItem, isCursor, isSelected, isFlashing bool, indent int) string {
	if item == nil {
		return ""
	}

	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}

	checkbox := "[ ]"
	checkStyle := lipgloss.NewStyle()
	if isSelected {
		checkbox = "[x]"
		checkStyle = r.styles.Checked
	}
	if isCursor {
		checkStyle = checkStyle.Background(lipgloss.Color(bgColor))
	}

	labelStyle := lipgloss.NewStyle()
	if isFlashing {
		labelStyle = r.styles.Flash
	}
	if isCursor {
		labelStyle = labelStyle.Background(lipgloss.Color(bgColor))
	}

	var parts []string
	if indent > 0 {
		parts = append(parts, strings.Repeat("  ", indent))
	}
	parts = append(parts, checkStyle.Render(checkbox))
	parts = append(parts, " ")
	parts = append(parts, labelStyle.Render(item.Label))

	if item.Detail != "" {
		detailStyle := r.styles.Dim
		if isCursor {
			detailStyle = detailStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, " ")
		parts = append(parts, detailStyle.Render("— "+item.Detail))
	}

	return strings.Join(parts, "")
}

// RenderCategory renders a category header line with a selected/total count
func (r *ItemRenderer) RenderCategory(name string, selected, total int, isCursor bool) string {
	header := name
	if header == "" {
		header = "Other"
	}

	style := r.styles.Category
	countStyle := r.styles.Dim
	if isCursor {
		style = style.Background(lipgloss.Color("238"))
		countStyle = countStyle.Background(lipgloss.Color("238"))
	}

	count := ""
	if total > 0 {
		count = countStyle.Render(fmt.Sprintf("(%d/%d)", selected, total))
	}

	return style.Render("▸ "+header) + " " + count
}

package domain

// FocusItem represents one selectable entry in the planner catalog
type FocusItem struct {
	ID       string
	Label    string
	Category string // section it is shown under ("" if uncategorized)
	Detail   string // optional one-line description
}

// Catalog is the ordered list of items offered by the planner
type Catalog struct {
	Items []FocusItem
}

// IDs returns the item identifiers in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Categories returns the distinct category names in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range c.Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			names = append(names, item.Category)
		}
	}
	return names
}

package selection

// State holds selection state
type State struct {
	SelectedItems map[string]bool
}

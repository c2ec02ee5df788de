package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventAllSelected      EventType = "AllSelected"
	EventNoteChanged      EventType = "NoteChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when individual items are toggled in or out
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// AllSelectedEvent is emitted after a bulk select
type AllSelectedEvent struct {
	IDs   []string // identifiers newly added by the bulk select
	Total int
}

func (e AllSelectedEvent) Type() EventType { return EventAllSelected }

// NoteChangedEvent is emitted when the note text changes
type NoteChangedEvent struct {
	Length int // rune length of the note
}

func (e NoteChangedEvent) Type() EventType { return EventNoteChanged }

// ConfigLoadedEvent is emitted when configuration has been read
type ConfigLoadedEvent struct {
	Path      string
	ItemCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

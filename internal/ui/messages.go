package ui

import (
	"time"

	"focusdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// flashExpiredMsg is sent when a toggle flash delay elapses
type flashExpiredMsg time.Time

// summaryPagerMsg contains the result of the summary pager command
type summaryPagerMsg struct {
	err error
}

// helpPagerMsg contains the result of the help pager command
type helpPagerMsg struct {
	err error
}

// Package textmetrics classifies text length against a maximum for the
// note character counter.
package textmetrics

import (
	"fmt"
	"unicode/utf8"
)

// Severity classifies how close a text is to its length limit
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Classify returns the severity tier for current characters out of max.
// Up to 60% of max is normal, up to 80% is warning, above that critical.
// Integer arithmetic keeps the boundaries exact: 60/100 is still normal
// and 80/100 still warning.
func Classify(current, max int) Severity {
	switch {
	case current*10 <= max*6:
		return SeverityNormal
	case current*10 <= max*8:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// Format renders the counter as "current/max" for display
func Format(current, max int) string {
	return fmt.Sprintf("%d/%d", current, max)
}

// CountRunes counts Unicode characters rather than bytes, so multi-byte
// text (CJK, emoji) is measured the way the user perceives it.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		max     int
		want    Severity
	}{
		{"well under limit", 50, 100, SeverityNormal},
		{"past 60 percent", 65, 100, SeverityWarning},
		{"past 80 percent", 85, 100, SeverityCritical},
		{"exactly 60 percent", 60, 100, SeverityNormal},
		{"exactly 80 percent", 80, 100, SeverityWarning},
		{"empty", 0, 100, SeverityNormal},
		{"at limit", 100, 100, SeverityCritical},
		{"odd max boundary", 120, 200, SeverityNormal},
		{"odd max warning", 121, 200, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.current, tt.max))
		})
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "normal", SeverityNormal.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "critical", SeverityCritical.String())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42/200", Format(42, 200))
	assert.Equal(t, "0/200", Format(0, 200))
}

func TestCountRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, CountRunes("hello"))
	assert.Equal(t, 0, CountRunes(""))
	assert.Equal(t, 5, CountRunes("こんにちは"), "CJK should count characters, not bytes")
	assert.Equal(t, 6, CountRunes("Hello👋"))
}

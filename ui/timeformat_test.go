package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-5 * 24 * time.Hour), "5d ago"},
		{"months", now.Add(-70 * 24 * time.Hour), "2mo ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.t))
		})
	}
}

func TestFormatLastPlayed(t *testing.T) {
	assert.Equal(t, "never", FormatLastPlayed(nil))

	played := time.Now().Add(-10 * time.Minute)
	assert.Equal(t, "10m ago", FormatLastPlayed(&played))
}

func TestFormatPlaytime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"seconds only", 45 * time.Second, "45s"},
		{"minutes", 12 * time.Minute, "12m"},
		{"hours and minutes", 3*time.Hour + 20*time.Minute, "3h 20m"},
		{"long playtime", 128*time.Hour + 5*time.Minute, "128h 5m"},
		{"sub-minute remainder dropped", 3*time.Hour + 20*time.Minute + 59*time.Second, "3h 20m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPlaytime(tt.d))
		})
	}
}

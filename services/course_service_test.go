package services

import (
	"testing"
	"time"
)

func TestProgression(t *testing.T) {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		now   time.Time
		weeks int
		want  int
	}{
		{"before semester", start.AddDate(0, -1, 0), 13, 0},
		{"at semester start", start, 13, 0},
		{"mid semester", start.AddDate(0, 0, 7*6), 13, 46},
		{"semester end", start.AddDate(0, 0, 7*13), 13, 100},
		{"past semester clamps", start.AddDate(1, 0, 0), 13, 100},
		{"zero weeks", start, 0, 0},
		{"negative weeks", start, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progression(tt.now, start, tt.weeks)
			if got != tt.want {
				t.Errorf("Progression(%v, %v, %d) = %d, want %d", tt.now, start, tt.weeks, got, tt.want)
			}
		})
	}
}

func TestProgressionMonotonic(t *testing.T) {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	prev := -1
	for day := -7; day <= 7*14; day += 3 {
		now := start.AddDate(0, 0, day)
		got := Progression(now, start, 13)
		if got < prev {
			t.Fatalf("progression decreased: day %d gave %d after %d", day, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("progression out of range on day %d: %d", day, got)
		}
		prev = got
	}
}

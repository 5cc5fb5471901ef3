package services

import (
	"testing"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		enrolled  int64
		want      float64
	}{
		{"no enrolled students", 0, 0, 0},
		{"negative enrolled", 5, -1, 0},
		{"nobody submitted", 0, 20, 0},
		{"half submitted", 10, 20, 50},
		{"all submitted", 20, 20, 100},
		{"third submitted rounds", 1, 3, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionPercentage(tt.completed, tt.enrolled)
			if got != tt.want {
				t.Errorf("CompletionPercentage(%d, %d) = %v, want %v", tt.completed, tt.enrolled, got, tt.want)
			}
		})
	}
}

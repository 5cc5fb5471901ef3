package services

import (
	"testing"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		grades []float64
		want   float64
	}{
		{"no grades", []float64{}, 0},
		{"nil grades", nil, 0},
		{"single grade", []float64{87.5}, 87.5},
		{"simple average", []float64{80, 90}, 85},
		{"rounds to two decimals", []float64{70, 80, 90, 95}, 83.75},
		{"repeating decimal rounds", []float64{1, 1, 0}, 0.67},
		{"zero grades count", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Average(tt.grades)
			if got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.grades, got, tt.want)
			}
		})
	}
}

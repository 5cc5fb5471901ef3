package services

import (
	"testing"

	"github.com/obarcalifa/studentdash-api/model"
)

func TestScheduleType(t *testing.T) {
	tests := []struct {
		eventType string
		want      string
	}{
		{model.EventTypeCourse, ScheduleTypeLecture},
		{model.EventTypeUser, ScheduleTypePractice},
		{"site", ScheduleTypeOther},
		{"", ScheduleTypeOther},
	}

	for _, tt := range tests {
		got := ScheduleType(tt.eventType)
		if got != tt.want {
			t.Errorf("ScheduleType(%q) = %q, want %q", tt.eventType, got, tt.want)
		}
	}
}

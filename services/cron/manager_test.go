package cron

import (
	"testing"
)

func TestRegisterJobs(t *testing.T) {
	m := NewCronManager(nil, nil)

	if err := m.registerJobs(); err != nil {
		t.Fatalf("registerJobs failed: %v", err)
	}

	// Cleanup, nightly activity purge, hourly cache sweep.
	if got := len(m.cron.Entries()); got != 3 {
		t.Errorf("registered %d jobs, want 3", got)
	}
}

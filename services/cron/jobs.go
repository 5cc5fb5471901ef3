package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
)

const (
	cronLogRetention   = 30 * 24 * time.Hour
	zoomPurgeRetention = 30 * 24 * time.Hour
	staleActivityAge   = 180 * 24 * time.Hour
)

// CleanupOldData hard-deletes soft-deleted zoom records past retention and
// trims old cron job logs.
func (m *CronManager) CleanupOldData() {
	jobName := "cleanup_old_data"

	zoomCutoff := time.Now().Add(-zoomPurgeRetention)
	zoomResult := m.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", zoomCutoff).
		Delete(&model.ZoomRecord{})
	if zoomResult.Error != nil {
		m.logJobError(jobName, zoomResult.Error)
		return
	}

	logCutoff := time.Now().Add(-cronLogRetention)
	logResult := m.db.Unscoped().
		Where("created_at < ?", logCutoff).
		Delete(&model.CronJobLog{})
	if logResult.Error != nil {
		m.logJobError(jobName, logResult.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"purged %d zoom records, %d cron logs", zoomResult.RowsAffected, logResult.RowsAffected))
}

// PurgeStaleActivities removes personal activities whose due date passed
// more than half a year ago. They are invisible on the dashboard by then and
// only inflate the table.
func (m *CronManager) PurgeStaleActivities() {
	jobName := "purge_stale_activities"

	cutoff := time.Now().Add(-staleActivityAge)
	result := m.db.
		Where("due_date < ?", cutoff).
		Delete(&model.PersonalActivity{})
	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("removed %d stale activities", result.RowsAffected))
}

// SweepDashboardCache drops every cached dashboard payload. Write handlers
// already invalidate per user; the sweep catches payloads staled by LMS-side
// imports that bypass this API.
func (m *CronManager) SweepDashboardCache() {
	jobName := "sweep_dashboard_cache"
	ctx := context.Background()

	keys, err := m.cache.Keys(ctx, "dashboard:*")
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	if len(keys) > 0 {
		if err := m.cache.Delete(ctx, keys...); err != nil {
			m.logJobError(jobName, err)
			return
		}
	}

	m.logJobComplete(jobName, fmt.Sprintf("dropped %d cached dashboards", len(keys)))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound is returned when a mutated record does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNotOwner is returned when a caller mutates a record they do not own.
	ErrNotOwner = errors.New("caller does not own this record")
)

// ZoomView is one recording entry for a course.
type ZoomView struct {
	ID         uint   `json:"id"`
	UUID       string `json:"uuid"`
	RecordType string `json:"record_type"`
	Name       string `json:"name"`
	RecordedAt string `json:"recorded_at"` // RFC3339 UTC
	Status     string `json:"status"`
	URL        string `json:"url,omitempty"`
}

// ZoomService handles conference recording entries: per-course listing plus
// the host-owned create and status-update operations.
type ZoomService struct {
	db *gorm.DB
}

// NewZoomService creates a new zoom service
func NewZoomService(db *gorm.DB) *ZoomService {
	return &ZoomService{
		db: db,
	}
}

// ComposeForCourse returns every recording entry of a course, newest first.
func (s *ZoomService) ComposeForCourse(ctx context.Context, courseID uint) ([]ZoomView, error) {
	var records []model.ZoomRecord
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zoom records: %w", err)
	}

	views := []ZoomView{}
	for _, record := range records {
		views = append(views, ZoomView{
			ID:         record.ID,
			UUID:       record.UUID.String(),
			RecordType: record.RecordType,
			Name:       record.Name,
			RecordedAt: record.RecordedAt.UTC().Format(time.RFC3339),
			Status:     record.Status,
			URL:        record.URL,
		})
	}

	return views, nil
}

// Create stores a new recording entry hosted by the given user.
func (s *ZoomService) Create(ctx context.Context, record *model.ZoomRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create zoom record: %w", err)
	}
	return nil
}

// UpdateStatus sets a record's status. Only the hosting user or an admin may
// mutate a record; anyone else gets ErrNotOwner regardless of whether the
// record exists in their courses.
func (s *ZoomService) UpdateStatus(ctx context.Context, recordID uint, status string, actor *model.User) error {
	var record model.ZoomRecord
	err := s.db.WithContext(ctx).First(&record, recordID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to fetch zoom record: %w", err)
	}

	if record.HostUserID != actor.ID && actor.Role != "admin" {
		return ErrNotOwner
	}

	err = s.db.WithContext(ctx).
		Model(&record).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update zoom record: %w", err)
	}
	return nil
}

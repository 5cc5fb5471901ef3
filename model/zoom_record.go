package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Zoom record statuses.
const (
	ZoomStatusScheduled = "scheduled"
	ZoomStatusRecorded  = "recorded"
	ZoomStatusPublished = "published"
)

// ZoomRecord is a video-conference recording entry attached to a course.
// Owned by this service: created by the hosting user, status updated only by
// the host or an admin.
type ZoomRecord struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uuid"`
	CourseID   uint      `gorm:"not null;index" json:"course_id"`
	HostUserID uint      `gorm:"not null;index" json:"host_user_id"`
	RecordType string    `gorm:"type:varchar(50)" json:"record_type"` // e.g. lecture, office-hours
	Name       string    `gorm:"not null" json:"name"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	URL        string    `gorm:"type:varchar(512)" json:"url,omitempty"`

	// Relationships
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Host   User   `gorm:"foreignKey:HostUserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a record UUID when none was provided.
func (z *ZoomRecord) BeforeCreate(tx *gorm.DB) error {
	if z.UUID == uuid.Nil {
		z.UUID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for ZoomRecord
func (ZoomRecord) TableName() string {
	return "zoom_records"
}

package model

import "time"

// Calendar event types as stored by the LMS. The schedule composer maps them
// to display categories (lecture, practice, other).
const (
	EventTypeCourse = "course"
	EventTypeUser   = "user"
)

// CalendarEvent mirrors the LMS calendar/event table. Rows scoped to a course
// double as its weekly timetable. Read-only from this service.
type CalendarEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CourseID     uint      `gorm:"not null;index" json:"course_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"` // event owner, usually the lecturer
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	EventType    string    `gorm:"type:varchar(30);not null;default:'course'" json:"event_type"`
	TimeStart    time.Time `gorm:"not null;index" json:"time_start"`
	TimeDuration int       `gorm:"default:0" json:"time_duration"` // seconds

	// Relationships
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Exam is the dedicated exam record for a course. This table is the single
// canonical source for exam rows; historical quiz-derived exams are migrated
// into it once via cmd/backfillexams.
type Exam struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Name      string    `gorm:"not null" json:"name"`
	ExamType  string    `gorm:"type:varchar(50)" json:"exam_type"` // e.g. midterm, final
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	Duration  int       `gorm:"default:0" json:"duration"` // minutes
	Location  string    `gorm:"type:varchar(255)" json:"location"`

	// Relationships
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

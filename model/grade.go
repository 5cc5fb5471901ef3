package model

import "time"

// GradeItemCourse marks a grade row as a course-level final grade. Only rows
// with this item type feed the dashboard grade average.
const GradeItemCourse = "course"

// GradeRecord mirrors the LMS gradebook: one numeric final grade per user per
// grade item. Read-only from this service.
type GradeRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint    `gorm:"not null;index" json:"user_id"`
	CourseID   uint    `gorm:"not null;index" json:"course_id"`
	ItemType   string  `gorm:"type:varchar(30);not null;default:'course'" json:"item_type"`
	FinalGrade float64 `gorm:"not null" json:"final_grade"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GradeRecord
func (GradeRecord) TableName() string {
	return "grade_records"
}

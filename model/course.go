package model

import (
	"time"

	"gorm.io/gorm"
)

// Course mirrors the LMS course table. Read-only from this service.
type Course struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName  string `gorm:"not null" json:"fullname"`
	ShortName string `gorm:"type:varchar(100);uniqueIndex" json:"shortname"`

	// Relationships
	Enrolments  []Enrolment     `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Assignments []Assignment    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Quizzes     []Quiz          `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Events      []CalendarEvent `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Exams       []Exam          `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

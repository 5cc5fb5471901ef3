package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz attempt states mirrored from the LMS quiz module.
const (
	AttemptStateFinished   = "finished"
	AttemptStateInProgress = "inprogress"
)

// Quiz mirrors the LMS quiz table. Read-only from this service.
type Quiz struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Name      string    `gorm:"not null" json:"name"`
	Intro     string    `gorm:"type:text" json:"intro"`
	TimeClose time.Time `gorm:"not null" json:"time_close"`
	TimeLimit int       `gorm:"default:0" json:"time_limit"` // seconds

	// Relationships
	Course   Course        `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Attempts []QuizAttempt `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Quiz
func (Quiz) TableName() string {
	return "quizzes"
}

// QuizAttempt is one user's attempt against a quiz.
type QuizAttempt struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	QuizID       uint      `gorm:"not null;index:idx_attempt_quiz_user,priority:1" json:"quiz_id"`
	UserID       uint      `gorm:"not null;index:idx_attempt_quiz_user,priority:2" json:"user_id"`
	State        string    `gorm:"type:varchar(20);not null;default:'inprogress'" json:"state"`
	TimeModified time.Time `json:"time_modified"`

	// Relationships
	Quiz Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for QuizAttempt
func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

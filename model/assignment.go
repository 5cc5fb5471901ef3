package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission states mirrored from the LMS assignment module.
const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusDraft     = "draft"
)

// Assignment mirrors the LMS assignment table. Read-only from this service.
type Assignment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CourseID uint      `gorm:"not null;index" json:"course_id"`
	Name     string    `gorm:"not null" json:"name"`
	DueDate  time.Time `gorm:"not null" json:"due_date"`

	// IntroFilePrefix is the object-store prefix of the assignment's
	// introduction file area, e.g. "assignments/42/intro/".
	IntroFilePrefix string `gorm:"type:varchar(255)" json:"intro_file_prefix"`

	// Relationships
	Course      Course             `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Submissions []AssignSubmission `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
}

// AssignSubmission is one user's submission against an assignment.
type AssignSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AssignmentID uint      `gorm:"not null;index:idx_submission_assign_user,priority:1" json:"assignment_id"`
	UserID       uint      `gorm:"not null;index:idx_submission_assign_user,priority:2" json:"user_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	TimeModified time.Time `json:"time_modified"`

	// Relationships
	Assignment Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for AssignSubmission
func (AssignSubmission) TableName() string {
	return "assign_submissions"
}

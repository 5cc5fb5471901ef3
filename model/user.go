package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role identifiers for course enrolments. These mirror the role table of the
// upstream LMS, where 3 is the primary instructor role, 4 the secondary
// instructor role and 5 the student role.
const (
	RolePrimaryInstructor   = 3
	RoleSecondaryInstructor = 4
	RoleStudent             = 5
)

// User mirrors the LMS user table. This service never writes users; they are
// owned by the identity subsystem and read here for profile and instructor
// lookups.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	IDNumber     string `gorm:"type:varchar(64);uniqueIndex" json:"id_number"` // institutional student ID
	FirstName    string `gorm:"not null" json:"firstname"`
	LastName     string `gorm:"not null" json:"lastname"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"type:varchar(32)" json:"phone"`
	Institution  string `gorm:"type:varchar(255)" json:"institution"`
	Department   string `gorm:"type:varchar(255)" json:"department"`
	Major        string `gorm:"type:varchar(255)" json:"major,omitempty"`
	AcademicYear int    `gorm:"default:0" json:"academic_year,omitempty"`
	Role         string `gorm:"type:varchar(20);default:'student'" json:"role"` // student, admin

	// Relationships
	Enrolments []Enrolment   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Grades     []GradeRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// FullName returns "First Last" with either part optional.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Enrolment ties a user to a course under a specific role. The composers use
// it both to resolve a student's course list and to find instructors.
type Enrolment struct {
	UserID     uint  `gorm:"primaryKey" json:"user_id"`
	CourseID   uint  `gorm:"primaryKey" json:"course_id"`
	RoleID     int   `gorm:"primaryKey;default:5" json:"role_id"`
	EnrolledAt int64 `gorm:"autoCreateTime" json:"enrolled_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

// TableName keeps the LMS table naming.
func (Enrolment) TableName() string {
	return "enrolments"
}

package model

import "time"

// PersonalActivity is a user-owned to-do item attached to a course. Fully
// owned by this service: only the owning user can see or delete it.
type PersonalActivity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint      `gorm:"not null;index:idx_activity_user_course,priority:1" json:"user_id"`
	CourseID   uint      `gorm:"not null;index:idx_activity_user_course,priority:2" json:"course_id"`
	TaskName   string    `gorm:"not null" json:"task_name"`
	DueDate    time.Time `gorm:"not null" json:"due_date"`
	ModifyDate time.Time `gorm:"not null" json:"modify_date"`
	Status     string    `gorm:"type:varchar(50);not null" json:"status"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for PersonalActivity
func (PersonalActivity) TableName() string {
	return "personal_activities"
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

// ExamView is one exam row for a course.
type ExamView struct {
	ExamID   uint   `json:"exam_id"`
	ExamName string `json:"exam_name"`
	ExamType string `json:"exam_type"`
	StartsAt string `json:"starts_at"` // RFC3339 UTC
	Duration int    `json:"duration"`  // minutes
	Location string `json:"location"`
}

// ExamService reads the dedicated exam table. Exams derived from quiz close
// times are migrated into it once by cmd/backfillexams; there is no live
// quiz-based fallback.
type ExamService struct {
	db *gorm.DB
}

// NewExamService creates a new exam service
func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{
		db: db,
	}
}

// ComposeForCourse returns all exams of a course ordered by start time.
func (s *ExamService) ComposeForCourse(ctx context.Context, courseID uint) ([]ExamView, error) {
	var exams []model.Exam
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("starts_at").
		Find(&exams).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}

	views := []ExamView{}
	for _, exam := range exams {
		views = append(views, ExamView{
			ExamID:   exam.ID,
			ExamName: exam.Name,
			ExamType: exam.ExamType,
			StartsAt: exam.StartsAt.UTC().Format(time.RFC3339),
			Duration: exam.Duration,
			Location: exam.Location,
		})
	}

	return views, nil
}

package services

import (
	"context"
	"fmt"
	"math"

	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

// GradeService aggregates course-level final grades.
type GradeService struct {
	db *gorm.DB
}

// NewGradeService creates a new grade service
func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{
		db: db,
	}
}

// AverageForUser returns the mean of a user's course-level final grades,
// rounded to two decimal places. A user with no grades averages 0.
func (s *GradeService) AverageForUser(ctx context.Context, userID uint) (float64, error) {
	var grades []float64
	err := s.db.WithContext(ctx).
		Model(&model.GradeRecord{}).
		Where("user_id = ? AND item_type = ?", userID, model.GradeItemCourse).
		Pluck("final_grade", &grades).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch grades: %w", err)
	}

	return Average(grades), nil
}

// Average computes the arithmetic mean rounded to 2 decimal places.
// The empty set averages 0 rather than NaN.
func Average(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}

	var total float64
	for _, g := range grades {
		total += g
	}
	return round2(total / float64(len(grades)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

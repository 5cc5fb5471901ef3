package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"github.com/obarcalifa/studentdash-api/utils/cache"
)

// Dashboard payloads are cached briefly per (user, course scope) and dropped
// on any write by that user.
const dashboardCacheTTL = 30 * time.Second

// DashboardPayload is the single document the SPA renders.
type DashboardPayload struct {
	StudentID          string                   `json:"studentID"`
	Firstname          string                   `json:"firstname"`
	Lastname           string                   `json:"lastname"`
	Institution        string                   `json:"institution"`
	Department         string                   `json:"department"`
	Email              string                   `json:"email"`
	Phone              string                   `json:"phone"`
	GradesAverage      float64                  `json:"gradesAverage"`
	Courses            []CourseView             `json:"courses"`
	PersonalActivities []model.PersonalActivity `json:"personalActivities"`
}

// DashboardService is the top-level composer: one call per dashboard request,
// fanning out to the grade, course and activity composers.
type DashboardService struct {
	grades     *GradeService
	courses    *CourseService
	activities *ActivityService
	cache      *cache.RedisCache
}

// NewDashboardService creates a new dashboard service. The cache may be nil;
// composition then always hits the database.
func NewDashboardService(grades *GradeService, courses *CourseService, activities *ActivityService, redisCache *cache.RedisCache) *DashboardService {
	return &DashboardService{
		grades:     grades,
		courses:    courses,
		activities: activities,
		cache:      redisCache,
	}
}

// Compose assembles the full dashboard document for a user, optionally scoped
// to one course.
func (s *DashboardService) Compose(ctx context.Context, user *model.User, courseID uint) (*DashboardPayload, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:%d", user.ID, courseID)

	if s.cache != nil {
		var cached DashboardPayload
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	average, err := s.grades.AverageForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.ComposeForUser(ctx, user.ID, courseID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.List(user.ID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	payload := &DashboardPayload{
		StudentID:          user.IDNumber,
		Firstname:          user.FirstName,
		Lastname:           user.LastName,
		Institution:        user.Institution,
		Department:         user.Department,
		Email:              user.Email,
		Phone:              user.Phone,
		GradesAverage:      average,
		Courses:            courses,
		PersonalActivities: activities,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, payload, dashboardCacheTTL); err != nil {
			log.Printf("failed to cache dashboard for user %d: %v", user.ID, err)
		}
	}

	return payload, nil
}

// InvalidateUser drops every cached dashboard variant for a user. Called
// after any write the user makes.
func (s *DashboardService) InvalidateUser(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}

	keys, err := s.cache.Keys(ctx, fmt.Sprintf("dashboard:%d:*", userID))
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Printf("failed to invalidate dashboard cache for user %d: %v", userID, err)
	}
}

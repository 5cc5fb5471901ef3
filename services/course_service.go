package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

// CourseView is one enrolled course on the dashboard, with everything the SPA
// renders for it merged in.
type CourseView struct {
	ID            uint           `json:"id"`
	FullName      string         `json:"fullname"`
	Lecturer      string         `json:"lecturer"`
	LecturerEmail string         `json:"lectureremail"`
	Assistants    []string       `json:"assistants,omitempty"`
	URL           string         `json:"url"`
	Progression   int            `json:"progression"` // 0..100
	Tasks         []TaskView     `json:"tasks"`
	Events        []EventView    `json:"events"`
	Schedule      []ScheduleView `json:"schedule"`
	Exams         []ExamView     `json:"exams"`
	ZoomRecords   []ZoomView     `json:"zoomRecords"`
}

// CourseService resolves a student's enrolled courses and merges in the
// per-course composers.
type CourseService struct {
	db       *gorm.DB
	tasks    *TaskService
	schedule *ScheduleService
	exams    *ExamService
	zoom     *ZoomService

	baseURL       string
	semesterStart time.Time
	semesterWeeks int
}

// NewCourseService creates a new course service
func NewCourseService(db *gorm.DB, tasks *TaskService, schedule *ScheduleService, exams *ExamService, zoom *ZoomService, baseURL string, semesterStart time.Time, semesterWeeks int) *CourseService {
	return &CourseService{
		db:            db,
		tasks:         tasks,
		schedule:      schedule,
		exams:         exams,
		zoom:          zoom,
		baseURL:       baseURL,
		semesterStart: semesterStart,
		semesterWeeks: semesterWeeks,
	}
}

// ComposeForUser builds the course list for a student. courseID narrows the
// list to a single course when non-zero. Course order follows the enrolment
// rows and is not contractually specified.
func (s *CourseService) ComposeForUser(ctx context.Context, userID, courseID uint) ([]CourseView, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Course{}).
		Joins("JOIN enrolments ON enrolments.course_id = courses.id").
		Where("enrolments.user_id = ? AND enrolments.role_id = ?", userID, model.RoleStudent)
	if courseID != 0 {
		query = query.Where("courses.id = ?", courseID)
	}

	var courses []model.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch enrolled courses: %w", err)
	}

	progression := Progression(time.Now().UTC(), s.semesterStart, s.semesterWeeks)

	views := []CourseView{}
	for _, course := range courses {
		view := CourseView{
			ID:          course.ID,
			FullName:    course.FullName,
			URL:         fmt.Sprintf("%s/course/view.php?id=%d", s.baseURL, course.ID),
			Progression: progression,
		}

		// A course without an assigned lecturer renders with empty
		// instructor fields rather than failing the whole payload.
		lecturer, err := s.instructor(ctx, course.ID, model.RolePrimaryInstructor)
		if err != nil {
			return nil, err
		}
		if lecturer != nil {
			view.Lecturer = lecturer.FullName()
			view.LecturerEmail = lecturer.Email
		}

		assistants, err := s.instructors(ctx, course.ID, model.RoleSecondaryInstructor)
		if err != nil {
			return nil, err
		}
		for _, assistant := range assistants {
			view.Assistants = append(view.Assistants, assistant.FullName())
		}

		if view.Tasks, err = s.tasks.ComposeForCourse(ctx, userID, course.ID); err != nil {
			return nil, err
		}
		if view.Events, err = s.schedule.UpcomingEvents(ctx, userID, course.ID); err != nil {
			return nil, err
		}
		if view.Schedule, err = s.schedule.ComposeForCourse(ctx, course.ID); err != nil {
			return nil, err
		}
		if view.Exams, err = s.exams.ComposeForCourse(ctx, course.ID); err != nil {
			return nil, err
		}
		if view.ZoomRecords, err = s.zoom.ComposeForCourse(ctx, course.ID); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return views, nil
}

// instructor returns the first user holding the role in the course, or nil
// when the role is unassigned.
func (s *CourseService) instructor(ctx context.Context, courseID uint, roleID int) (*model.User, error) {
	users, err := s.instructors(ctx, courseID, roleID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (s *CourseService) instructors(ctx context.Context, courseID uint, roleID int) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN enrolments ON enrolments.user_id = users.id").
		Where("enrolments.course_id = ? AND enrolments.role_id = ?", courseID, roleID).
		Order("enrolments.enrolled_at").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instructors: %w", err)
	}
	return users, nil
}

// Progression converts elapsed semester time into a percentage:
// round(weeksElapsed / semesterWeeks * 100), clamped to [0,100]. It is
// monotonically non-decreasing in now.
func Progression(now, semesterStart time.Time, semesterWeeks int) int {
	if semesterWeeks <= 0 {
		return 0
	}

	weeksElapsed := now.Sub(semesterStart).Hours() / (24 * 7)
	pct := int(math.Round(weeksElapsed / float64(semesterWeeks) * 100))

	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

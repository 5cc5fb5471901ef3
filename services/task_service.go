package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"github.com/obarcalifa/studentdash-api/services/files"
	"gorm.io/gorm"
)

// Task type tags on the dashboard task list.
const (
	TaskTypeAssignment = "Assignment"
	TaskTypeQuiz       = "Quiz"
)

// Task statuses as shown to the student.
const (
	TaskStatusSubmitted    = "Submitted"
	TaskStatusNotSubmitted = "Not Submitted"
	TaskStatusAttempted    = "Attempted"
	TaskStatusNotAttempted = "Not Attempted"
)

const downloadLinkTTL = 15 * time.Minute

// TaskView is one row of a course's merged task list. Assignments and quizzes
// share the shape; DownloadURL is assignment-only.
type TaskView struct {
	TaskID               uint    `json:"task_id"`
	TaskType             string  `json:"task_type"`
	TaskName             string  `json:"task_name"`
	DueDate              string  `json:"due_date"` // RFC3339 UTC
	TaskStatus           string  `json:"task_status"`
	ModifyDate           *string `json:"modify_date"` // RFC3339 UTC, null until submitted/attempted
	SubmissionPercentage float64 `json:"submission_percentage"`
	URL                  string  `json:"url"`
	DownloadURL          string  `json:"download_url,omitempty"`
}

// TaskService merges a course's assignments and quizzes into one task list
// with uniform status and completion-percentage semantics.
type TaskService struct {
	db      *gorm.DB
	files   *files.SpacesClient
	baseURL string
}

// NewTaskService creates a new task service. The files client may be nil when
// no file store is configured; download links are then omitted.
func NewTaskService(db *gorm.DB, filesClient *files.SpacesClient, baseURL string) *TaskService {
	return &TaskService{
		db:      db,
		files:   filesClient,
		baseURL: baseURL,
	}
}

// ComposeForCourse returns the merged task list for one user in one course:
// assignments first, then quizzes, each source in its natural order.
func (s *TaskService) ComposeForCourse(ctx context.Context, userID, courseID uint) ([]TaskView, error) {
	// Denominator for completion percentages: students enrolled in the course.
	var enrolled int64
	err := s.db.WithContext(ctx).
		Model(&model.Enrolment{}).
		Where("course_id = ? AND role_id = ?", courseID, model.RoleStudent).
		Count(&enrolled).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count enrolled students: %w", err)
	}

	tasks := []TaskView{}

	assignments, err := s.composeAssignments(ctx, userID, courseID, enrolled)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, assignments...)

	quizzes, err := s.composeQuizzes(ctx, userID, courseID, enrolled)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, quizzes...)

	return tasks, nil
}

func (s *TaskService) composeAssignments(ctx context.Context, userID, courseID uint, enrolled int64) ([]TaskView, error) {
	var assignments []model.Assignment
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	views := []TaskView{}
	for _, assignment := range assignments {
		var submitted int64
		err := s.db.WithContext(ctx).
			Model(&model.AssignSubmission{}).
			Where("assignment_id = ? AND status = ?", assignment.ID, model.SubmissionStatusSubmitted).
			Count(&submitted).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count submissions: %w", err)
		}

		view := TaskView{
			TaskID:               assignment.ID,
			TaskType:             TaskTypeAssignment,
			TaskName:             assignment.Name,
			DueDate:              assignment.DueDate.UTC().Format(time.RFC3339),
			TaskStatus:           TaskStatusNotSubmitted,
			SubmissionPercentage: CompletionPercentage(submitted, enrolled),
			URL:                  fmt.Sprintf("%s/mod/assign/view.php?id=%d", s.baseURL, assignment.ID),
		}

		var submission model.AssignSubmission
		err = s.db.WithContext(ctx).
			Where("assignment_id = ? AND user_id = ? AND status = ?",
				assignment.ID, userID, model.SubmissionStatusSubmitted).
			First(&submission).Error
		switch {
		case err == nil:
			view.TaskStatus = TaskStatusSubmitted
			modified := submission.TimeModified.UTC().Format(time.RFC3339)
			view.ModifyDate = &modified
		case err != gorm.ErrRecordNotFound:
			return nil, fmt.Errorf("failed to fetch user submission: %w", err)
		}

		// A download link is best effort; a file-store hiccup must not take
		// the whole dashboard down.
		if s.files != nil && assignment.IntroFilePrefix != "" {
			url, err := s.files.FirstFileURL(ctx, assignment.IntroFilePrefix, downloadLinkTTL)
			if err != nil {
				log.Printf("skipping download link for assignment %d: %v", assignment.ID, err)
			} else {
				view.DownloadURL = url
			}
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *TaskService) composeQuizzes(ctx context.Context, userID, courseID uint, enrolled int64) ([]TaskView, error) {
	var quizzes []model.Quiz
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quizzes: %w", err)
	}

	views := []TaskView{}
	for _, quiz := range quizzes {
		var attempted int64
		err := s.db.WithContext(ctx).
			Model(&model.QuizAttempt{}).
			Where("quiz_id = ? AND state = ?", quiz.ID, model.AttemptStateFinished).
			Count(&attempted).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count attempts: %w", err)
		}

		view := TaskView{
			TaskID:               quiz.ID,
			TaskType:             TaskTypeQuiz,
			TaskName:             quiz.Name,
			DueDate:              quiz.TimeClose.UTC().Format(time.RFC3339),
			TaskStatus:           TaskStatusNotAttempted,
			SubmissionPercentage: CompletionPercentage(attempted, enrolled),
			URL:                  fmt.Sprintf("%s/mod/quiz/view.php?id=%d", s.baseURL, quiz.ID),
		}

		var attempt model.QuizAttempt
		err = s.db.WithContext(ctx).
			Where("quiz_id = ? AND user_id = ? AND state = ?",
				quiz.ID, userID, model.AttemptStateFinished).
			First(&attempt).Error
		switch {
		case err == nil:
			view.TaskStatus = TaskStatusAttempted
			modified := attempt.TimeModified.UTC().Format(time.RFC3339)
			view.ModifyDate = &modified
		case err != gorm.ErrRecordNotFound:
			return nil, fmt.Errorf("failed to fetch user attempt: %w", err)
		}

		views = append(views, view)
	}

	return views, nil
}

// CompletionPercentage computes completed/enrolled as a percentage rounded to
// two decimals. A course with no enrolled students reports 0, never a
// division by zero.
func CompletionPercentage(completed, enrolled int64) float64 {
	if enrolled <= 0 {
		return 0
	}
	return round2(float64(completed) / float64(enrolled) * 100)
}

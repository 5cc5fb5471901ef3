package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/model"
	"github.com/obarcalifa/studentdash-api/utils/validation"
)

// ErrInvalidInput is returned for create requests with missing or malformed
// fields. Handlers translate it into a validation failure response, never a
// 5xx.
var ErrInvalidInput = errors.New("invalid input")

// CreateActivityInput carries the textual form fields of a create request.
// Dates arrive as text ("2025-01-10" or RFC3339) and are parsed here.
type CreateActivityInput struct {
	CourseID   string `json:"courseId" validate:"required"`
	TaskName   string `json:"taskName" validate:"required"`
	DueDate    string `json:"dueDate" validate:"required"`
	ModifyDate string `json:"modifyDate" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

// ActivityService implements the personal to-do CRUD on top of the Storage
// gateway. Every operation is scoped to the owning user.
type ActivityService struct {
	store     database.Storage
	validator *validation.Validator
}

// NewActivityService creates a new activity service
func NewActivityService(store database.Storage) *ActivityService {
	return &ActivityService{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// List returns the user's activities for one course. Without a course scope
// the list is explicitly empty; there is no implicit all-courses query.
func (s *ActivityService) List(userID, courseID uint) ([]model.PersonalActivity, error) {
	if courseID == 0 {
		return []model.PersonalActivity{}, nil
	}
	return s.store.ListActivities(userID, courseID)
}

// Create validates the textual input, parses its dates and stores the
// activity for the given owner. Returns the new activity id.
func (s *ActivityService) Create(userID uint, input CreateActivityInput) (uint, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	courseID, err := strconv.ParseUint(validation.SanitizeString(input.CourseID), 10, 64)
	if err != nil || courseID == 0 {
		return 0, fmt.Errorf("%w: courseId must be a positive integer", ErrInvalidInput)
	}

	dueDate, err := parseTextualDate(input.DueDate)
	if err != nil {
		return 0, fmt.Errorf("%w: dueDate: %v", ErrInvalidInput, err)
	}
	modifyDate, err := parseTextualDate(input.ModifyDate)
	if err != nil {
		return 0, fmt.Errorf("%w: modifyDate: %v", ErrInvalidInput, err)
	}

	activity := model.PersonalActivity{
		UserID:     userID,
		CourseID:   uint(courseID),
		TaskName:   validation.SanitizeString(input.TaskName),
		DueDate:    dueDate,
		ModifyDate: modifyDate,
		Status:     validation.SanitizeString(input.Status),
	}

	if err := s.store.CreateActivity(&activity); err != nil {
		return 0, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity.ID, nil
}

// Delete removes an activity scoped to its owner. A missing id or an id owned
// by someone else is a silent no-op: the response never reveals whether the
// record existed.
func (s *ActivityService) Delete(id, userID uint) error {
	if err := s.store.DeleteActivity(id, userID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// parseTextualDate accepts the date formats the dashboard sends.
func parseTextualDate(value string) (time.Time, error) {
	value = validation.SanitizeString(value)

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

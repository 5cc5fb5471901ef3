package services

import (
	"context"
	"fmt"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

// Schedule entry types shown on the dashboard timetable.
const (
	ScheduleTypeLecture  = "lecture"
	ScheduleTypePractice = "practice"
	ScheduleTypeOther    = "other"
)

// ScheduleView is one timetable row for a course.
type ScheduleView struct {
	LecturerName string `json:"lecturer_name"`
	DayOfWeek    string `json:"day_of_week"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	Type         string `json:"type"`
}

// ScheduleService shapes a course's calendar rows into its weekly timetable.
type ScheduleService struct {
	db *gorm.DB
}

// NewScheduleService creates a new schedule service
func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		db: db,
	}
}

type scheduleRow struct {
	FirstName    string
	LastName     string
	TimeStart    time.Time
	TimeDuration int
	EventType    string
}

// ComposeForCourse returns the course timetable ordered by start time.
func (s *ScheduleService) ComposeForCourse(ctx context.Context, courseID uint) ([]ScheduleView, error) {
	var rows []scheduleRow
	err := s.db.WithContext(ctx).
		Model(&model.CalendarEvent{}).
		Select("users.first_name, users.last_name, calendar_events.time_start, calendar_events.time_duration, calendar_events.event_type").
		Joins("JOIN users ON users.id = calendar_events.user_id").
		Where("calendar_events.course_id = ?", courseID).
		Order("calendar_events.time_start").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	views := []ScheduleView{}
	for _, row := range rows {
		start := row.TimeStart.UTC()
		end := start.Add(time.Duration(row.TimeDuration) * time.Second)

		views = append(views, ScheduleView{
			LecturerName: row.FirstName + " " + row.LastName,
			DayOfWeek:    start.Weekday().String(),
			StartTime:    start.Format("15:04"),
			EndTime:      end.Format("15:04"),
			Type:         ScheduleType(row.EventType),
		})
	}

	return views, nil
}

// ScheduleType maps a raw calendar event type onto a timetable category.
func ScheduleType(eventType string) string {
	switch eventType {
	case model.EventTypeCourse:
		return ScheduleTypeLecture
	case model.EventTypeUser:
		return ScheduleTypePractice
	default:
		return ScheduleTypeOther
	}
}

// EventView is a generic course calendar entry (deadlines, announcements),
// distinct from the shaped timetable.
type EventView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TimeStart    string `json:"time_start"` // RFC3339 UTC
	TimeDuration int    `json:"time_duration"`
}

// UpcomingEvents returns the course's calendar events starting within the
// next year, relative to user-visible events for the given user.
func (s *ScheduleService) UpcomingEvents(ctx context.Context, userID, courseID uint) ([]EventView, error) {
	now := time.Now().UTC()
	horizon := now.AddDate(1, 0, 0)

	var events []model.CalendarEvent
	err := s.db.WithContext(ctx).
		Where("course_id = ? AND time_start BETWEEN ? AND ?", courseID, now, horizon).
		Where("event_type <> ? OR user_id = ?", model.EventTypeUser, userID).
		Order("time_start").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	views := []EventView{}
	for _, event := range events {
		views = append(views, EventView{
			ID:           event.ID,
			Name:         event.Name,
			Description:  event.Description,
			TimeStart:    event.TimeStart.UTC().Format(time.RFC3339),
			TimeDuration: event.TimeDuration,
		})
	}

	return views, nil
}

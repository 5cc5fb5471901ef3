package services

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

func TestComposeDashboardForEmptyUser(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("failed to get GORM DB instance")
	}

	baseURL := "http://lms.test.local"
	taskService := NewTaskService(db, nil, baseURL)
	scheduleService := NewScheduleService(db)
	examService := NewExamService(db)
	zoomService := NewZoomService(db)
	courseService := NewCourseService(db, taskService, scheduleService, examService, zoomService,
		baseURL, time.Now().UTC().AddDate(0, -1, 0), 13)
	svc := NewDashboardService(
		NewGradeService(db),
		courseService,
		NewActivityService(store),
		nil,
	)

	user := model.User{
		IDNumber:    "EMPTY-0001",
		FirstName:   "Fresh",
		LastName:    "Enrollee",
		Email:       "fresh-enrollee@test.local",
		Institution: "Test Institute",
		Department:  "Testing",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&user) })

	payload, err := svc.Compose(context.Background(), &user, 0)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if payload.GradesAverage != 0 {
		t.Errorf("gradesAverage = %v, want 0", payload.GradesAverage)
	}
	if payload.Courses == nil {
		t.Fatal("Courses must be an empty slice, not nil")
	}
	if len(payload.Courses) != 0 {
		t.Errorf("courses = %d entries, want 0", len(payload.Courses))
	}
	if payload.PersonalActivities == nil {
		t.Fatal("PersonalActivities must be an empty slice, not nil")
	}
	if payload.StudentID != "EMPTY-0001" {
		t.Errorf("studentID = %q", payload.StudentID)
	}

	// The SPA receives [] for the empty lists, never null.
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"courses":[]`) {
		t.Errorf("payload does not serialize courses as []: %s", body)
	}
	if !strings.Contains(body, `"personalActivities":[]`) {
		t.Errorf("payload does not serialize personalActivities as []: %s", body)
	}
	if !strings.Contains(body, `"gradesAverage":0`) {
		t.Errorf("payload does not carry gradesAverage 0: %s", body)
	}
}

package activity

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/model"
	"github.com/obarcalifa/studentdash-api/services"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

// memoryStore is an in-memory Storage for handler tests.
type memoryStore struct {
	created []model.PersonalActivity
	deleted [][2]uint
}

func (s *memoryStore) Init() error        { return nil }
func (s *memoryStore) Close() error       { return nil }
func (s *memoryStore) HealthCheck() error { return nil }
func (s *memoryStore) GetDB() interface{} { return nil }

func (s *memoryStore) ListActivities(userID, courseID uint) ([]model.PersonalActivity, error) {
	return []model.PersonalActivity{}, nil
}

func (s *memoryStore) CreateActivity(activity *model.PersonalActivity) error {
	activity.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *activity)
	return nil
}

func (s *memoryStore) DeleteActivity(id, userID uint) error {
	s.deleted = append(s.deleted, [2]uint{id, userID})
	return nil
}

func testApp() (*fiber.App, *memoryStore) {
	store := &memoryStore{}
	activities := services.NewActivityService(store)
	dashboard := services.NewDashboardService(nil, nil, nil, nil)
	handler := NewHandler(activities, dashboard)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	})
	app.Post("/api/v1/activities", handler.HandleCreateActivity)
	app.Delete("/api/v1/activities/:id", handler.HandleDeleteActivity)

	return app, store
}

func TestCreateActivityMissingTaskName(t *testing.T) {
	app, store := testApp()

	body := `{"courseId":"12","dueDate":"2025-11-01","modifyDate":"2025-10-20","status":"pending"}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/activities", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var envelope response.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if envelope.Success {
		t.Error("success = true on a validation failure")
	}
	if envelope.Error == nil || envelope.Error.Code != response.CodeValidationFailed {
		t.Fatalf("error = %+v, want code %s", envelope.Error, response.CodeValidationFailed)
	}
	if envelope.Error.Message != "Invalid input" {
		t.Errorf("error message = %q, want %q", envelope.Error.Message, "Invalid input")
	}
	if len(store.created) != 0 {
		t.Error("invalid input must not reach storage")
	}
}

func TestCreateActivityReturnsTaskID(t *testing.T) {
	app, store := testApp()

	body := `{"courseId":"12","taskName":"Read chapter 4","dueDate":"2025-11-01","modifyDate":"2025-10-20","status":"pending"}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/activities", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var result struct {
		Success bool `json:"success"`
		TaskID  uint `json:"task_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if !result.Success {
		t.Error("success = false on create")
	}
	if result.TaskID == 0 {
		t.Error("task_id missing from create response")
	}
	if len(store.created) != 1 || store.created[0].UserID != 7 {
		t.Fatalf("stored = %+v, want one activity owned by user 7", store.created)
	}
}

func TestDeleteActivityIdempotent(t *testing.T) {
	app, store := testApp()

	req := httptest.NewRequest(fiber.MethodDelete, "/api/v1/activities/999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if !result.Success {
		t.Error("success = false on idempotent delete")
	}
	if len(store.deleted) != 1 || store.deleted[0] != [2]uint{999, 7} {
		t.Fatalf("delete calls = %v, want one owner-scoped call", store.deleted)
	}
}

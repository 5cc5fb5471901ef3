package services

import (
	"errors"
	"testing"
	"time"

	"github.com/obarcalifa/studentdash-api/model"
)

// stubStore records calls so validation failures can be asserted to never
// reach storage.
type stubStore struct {
	created []model.PersonalActivity
	deleted [][2]uint
	listed  []model.PersonalActivity
}

func (s *stubStore) Init() error        { return nil }
func (s *stubStore) Close() error       { return nil }
func (s *stubStore) HealthCheck() error { return nil }
func (s *stubStore) GetDB() interface{} { return nil }

func (s *stubStore) ListActivities(userID, courseID uint) ([]model.PersonalActivity, error) {
	return s.listed, nil
}

func (s *stubStore) CreateActivity(activity *model.PersonalActivity) error {
	activity.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *activity)
	return nil
}

func (s *stubStore) DeleteActivity(id, userID uint) error {
	s.deleted = append(s.deleted, [2]uint{id, userID})
	return nil
}

func TestParseTextualDate(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"2025-01-10", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), false},
		{"2025-01-10T14:30:00Z", time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC), false},
		{"  2025-01-10  ", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), false},
		{"10/01/2025", time.Time{}, true},
		{"not a date", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseTextualDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTextualDate(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTextualDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTextualDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestActivityListWithoutCourseScope(t *testing.T) {
	store := &stubStore{listed: []model.PersonalActivity{{TaskName: "should not appear"}}}
	svc := NewActivityService(store)

	activities, err := svc.List(7, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if activities == nil {
		t.Fatal("List without course scope must return an empty slice, not nil")
	}
	if len(activities) != 0 {
		t.Fatalf("List without course scope returned %d activities, want 0", len(activities))
	}
}

func TestActivityCreate(t *testing.T) {
	store := &stubStore{}
	svc := NewActivityService(store)

	id, err := svc.Create(7, CreateActivityInput{
		CourseID:   "12",
		TaskName:   "Read chapter 4",
		DueDate:    "2025-11-01",
		ModifyDate: "2025-10-20",
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == 0 {
		t.Fatal("Create returned zero id")
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored activity, got %d", len(store.created))
	}

	stored := store.created[0]
	if stored.UserID != 7 {
		t.Errorf("stored UserID = %d, want 7", stored.UserID)
	}
	if stored.CourseID != 12 {
		t.Errorf("stored CourseID = %d, want 12", stored.CourseID)
	}
	if stored.TaskName != "Read chapter 4" {
		t.Errorf("stored TaskName = %q", stored.TaskName)
	}
}

func TestActivityCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateActivityInput
	}{
		{"missing task name", CreateActivityInput{CourseID: "12", DueDate: "2025-11-01", ModifyDate: "2025-10-20", Status: "pending"}},
		{"missing course", CreateActivityInput{TaskName: "x", DueDate: "2025-11-01", ModifyDate: "2025-10-20", Status: "pending"}},
		{"non-numeric course", CreateActivityInput{CourseID: "abc", TaskName: "x", DueDate: "2025-11-01", ModifyDate: "2025-10-20", Status: "pending"}},
		{"zero course", CreateActivityInput{CourseID: "0", TaskName: "x", DueDate: "2025-11-01", ModifyDate: "2025-10-20", Status: "pending"}},
		{"bad due date", CreateActivityInput{CourseID: "12", TaskName: "x", DueDate: "tomorrow", ModifyDate: "2025-10-20", Status: "pending"}},
		{"bad modify date", CreateActivityInput{CourseID: "12", TaskName: "x", DueDate: "2025-11-01", ModifyDate: "someday", Status: "pending"}},
		{"missing status", CreateActivityInput{CourseID: "12", TaskName: "x", DueDate: "2025-11-01", ModifyDate: "2025-10-20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			svc := NewActivityService(store)

			_, err := svc.Create(7, tt.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Create(%+v) error = %v, want ErrInvalidInput", tt.input, err)
			}
			if len(store.created) != 0 {
				t.Fatal("invalid input must not reach storage")
			}
		})
	}
}

func TestActivityDeleteScopedToOwner(t *testing.T) {
	store := &stubStore{}
	svc := NewActivityService(store)

	if err := svc.Delete(42, 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(store.deleted) != 1 {
		t.Fatalf("expected 1 delete call, got %d", len(store.deleted))
	}
	if store.deleted[0] != [2]uint{42, 7} {
		t.Errorf("delete call = %v, want [42 7]", store.deleted[0])
	}
}

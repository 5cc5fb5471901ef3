package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

func integrationDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func TestZoomStatusUpdateOwnership(t *testing.T) {
	db := integrationDB(t)
	svc := NewZoomService(db)
	ctx := context.Background()

	host := model.User{FirstName: "Hosting", LastName: "User", Email: "host-ownership@test.local", Role: "teacher"}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("failed to create host: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&host) })

	stranger := model.User{FirstName: "Other", LastName: "User", Email: "stranger-ownership@test.local", Role: "student"}
	if err := db.Create(&stranger).Error; err != nil {
		t.Fatalf("failed to create stranger: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&stranger) })

	course := model.Course{FullName: "Ownership Test Course", ShortName: "OTC"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&course) })

	record := model.ZoomRecord{
		CourseID:   course.ID,
		HostUserID: host.ID,
		RecordType: "lecture",
		Name:       "ownership check",
		RecordedAt: time.Now().UTC(),
		Status:     model.ZoomStatusScheduled,
	}
	if err := svc.Create(ctx, &record); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&record) })

	// A non-host caller must be rejected.
	err := svc.UpdateStatus(ctx, record.ID, model.ZoomStatusRecorded, &stranger)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger update error = %v, want ErrNotOwner", err)
	}

	// The host may update.
	if err := svc.UpdateStatus(ctx, record.ID, model.ZoomStatusRecorded, &host); err != nil {
		t.Fatalf("host update failed: %v", err)
	}

	var reloaded model.ZoomRecord
	if err := db.First(&reloaded, record.ID).Error; err != nil {
		t.Fatalf("failed to reload record: %v", err)
	}
	if reloaded.Status != model.ZoomStatusRecorded {
		t.Errorf("status = %q, want %q", reloaded.Status, model.ZoomStatusRecorded)
	}

	// Unknown ids surface not-found, not a 500.
	err = svc.UpdateStatus(ctx, 0xFFFFFF, model.ZoomStatusPublished, &host)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("missing record error = %v, want ErrRecordNotFound", err)
	}
}

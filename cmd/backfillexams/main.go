// Command backfillexams migrates quiz-derived exams into the exams table.
// Historically the dashboard synthesized exam rows from closing quizzes at
// read time; the exams table is now canonical and this runs once per
// deployment to carry the old rows over. Re-running is safe: quizzes already
// mirrored by an exam row are skipped.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/obarcalifa/studentdash-api/config"
	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/gorm"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be created without writing")
	flag.Parse()

	if err := config.LoadENV(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer store.Close()

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("failed to get GORM DB instance")
	}

	if err := store.Init(); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	location := os.Getenv("EXAM_DEFAULT_LOCATION")
	if location == "" {
		location = "Main campus"
	}

	created, skipped, err := backfill(db, location, *dryRun)
	if err != nil {
		log.Fatalf("backfill failed: %v", err)
	}

	log.Printf("backfill complete: %d exams created, %d quizzes already covered", created, skipped)
}

// backfill creates one exam row per quiz that has no exam with the same
// course, name and start time yet.
func backfill(db *gorm.DB, location string, dryRun bool) (created, skipped int, err error) {
	var quizzes []model.Quiz
	if err := db.Find(&quizzes).Error; err != nil {
		return 0, 0, err
	}

	for _, quiz := range quizzes {
		var count int64
		err := db.Model(&model.Exam{}).
			Where("course_id = ? AND name = ? AND starts_at = ?", quiz.CourseID, quiz.Name, quiz.TimeClose).
			Count(&count).Error
		if err != nil {
			return created, skipped, err
		}
		if count > 0 {
			skipped++
			continue
		}

		exam := model.Exam{
			CourseID: quiz.CourseID,
			Name:     quiz.Name,
			ExamType: "quiz",
			StartsAt: quiz.TimeClose,
			Duration: quiz.TimeLimit / 60,
			Location: location,
		}

		if dryRun {
			log.Printf("would create exam %q for course %d at %s", exam.Name, exam.CourseID, exam.StartsAt)
			created++
			continue
		}

		if err := db.Create(&exam).Error; err != nil {
			return created, skipped, err
		}
		created++
	}

	return created, skipped, nil
}

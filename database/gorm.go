package database

import (
	"fmt"
	"log"
	"time"

	"github.com/obarcalifa/studentdash-api/config"
	"github.com/obarcalifa/studentdash-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: false,
		PrepareStmt:            true, // Prepare statements for better performance
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update tables. AutoMigrate is
// create-if-absent / add-column-if-absent, so concurrent cold starts are safe.
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		// LMS-mirrored read models
		&model.User{},
		&model.Course{},
		&model.Enrolment{},
		&model.GradeRecord{},
		&model.Assignment{},
		&model.AssignSubmission{},
		&model.Quiz{},
		&model.QuizAttempt{},
		&model.CalendarEvent{},

		// Models owned by this service
		&model.Exam{},
		&model.ZoomRecord{},
		&model.PersonalActivity{},

		// Audit & logging models
		&model.CronJobLog{},
	)

	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in services/handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ListActivities retrieves all activities owned by a user for one course
func (s *GORMStore) ListActivities(userID, courseID uint) ([]model.PersonalActivity, error) {
	var activities []model.PersonalActivity
	result := s.db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("due_date").
		Find(&activities)
	return activities, result.Error
}

// CreateActivity adds a new personal activity to the database
func (s *GORMStore) CreateActivity(activity *model.PersonalActivity) error {
	result := s.db.Create(activity)
	return result.Error
}

// DeleteActivity deletes an activity scoped to (id AND owner). A delete for a
// row the user does not own matches nothing and reports no error.
func (s *GORMStore) DeleteActivity(id, userID uint) error {
	result := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PersonalActivity{})
	return result.Error
}

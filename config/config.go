package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// Dashboard origin allowed on CORS. Single origin, the SPA host.
	ALLOWED_ORIGIN string
	// Base URL of the LMS, used for course and module deep links.
	LMS_BASE_URL string
	// JWT Configuration
	JWT_SECRET string
	JWT_ISSUER string
	// Redis Configuration
	REDIS_URL string
	// Semester calendar used for course progression
	SEMESTER_START string // YYYY-MM-DD
	SEMESTER_WEEKS int
	// S3-compatible file store holding the LMS file areas
	SPACES_ACCESS_KEY string
	SPACES_SECRET_KEY string
	SPACES_BUCKET     string
	SPACES_REGION     string
	SPACES_ENDPOINT   string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	baseURL := os.Getenv("LMS_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081/moodle"
	}

	semesterWeeks, err := strconv.Atoi(os.Getenv("SEMESTER_WEEKS"))
	if err != nil || semesterWeeks <= 0 {
		semesterWeeks = 13
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// Dashboard
		ALLOWED_ORIGIN: origin,
		LMS_BASE_URL:   baseURL,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: os.Getenv("JWT_ISSUER"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Semester calendar
		SEMESTER_START: os.Getenv("SEMESTER_START"),
		SEMESTER_WEEKS: semesterWeeks,
		// File store
		SPACES_ACCESS_KEY: os.Getenv("SPACES_ACCESS_KEY"),
		SPACES_SECRET_KEY: os.Getenv("SPACES_SECRET_KEY"),
		SPACES_BUCKET:     os.Getenv("SPACES_BUCKET"),
		SPACES_REGION:     os.Getenv("SPACES_REGION"),
		SPACES_ENDPOINT:   os.Getenv("SPACES_ENDPOINT"),
	}

	return envVariables, nil
}

// SemesterStart parses SEMESTER_START, falling back to the most recent
// October 1st when unset. Progression is computed against this date.
func (e *EnviornmentVariable) SemesterStart() time.Time {
	if e.SEMESTER_START != "" {
		if t, err := time.Parse("2006-01-02", e.SEMESTER_START); err == nil {
			return t
		}
	}
	now := time.Now().UTC()
	start := time.Date(now.Year(), time.October, 1, 0, 0, 0, 0, time.UTC)
	if start.After(now) {
		start = start.AddDate(-1, 0, 0)
	}
	return start
}

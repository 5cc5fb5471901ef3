package database

import (
	"log"
	"strings"
)

// Initialize provisions the tables owned by this service. Runs once at boot,
// never in the request path. Every statement is idempotent (IF NOT EXISTS)
// so concurrent cold starts cannot fail on duplicate objects.
func (s *PostgreSQLStore) Initialize() error {
	log.Println("Initializing PostgresSQL Database.", "Initializing Tables")
	if err := s.InitTables(); err != nil {
		return err
	}
	return nil
}

func (s *PostgreSQLStore) InitTables() error {
	//
	// Init the tables owned by this service. LMS-owned tables (users, courses,
	// enrolments, grades, assignments, quizzes, events) are provisioned by the
	// GORM store at boot; the raw store only carries the write-side module.
	//

	// personal activities table
	personal_activities_table := `
	CREATE TABLE IF NOT EXISTS personal_activities (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		user_id BIGINT NOT NULL,
		course_id BIGINT NOT NULL,
		task_name TEXT NOT NULL,
		due_date TIMESTAMPTZ NOT NULL,
		modify_date TIMESTAMPTZ NOT NULL,
		status VARCHAR(50) NOT NULL,
		created_at TIMESTAMPTZ DEFAULT now(),
		updated_at TIMESTAMPTZ DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_activity_user_course ON personal_activities (user_id, course_id);
	`

	// columns added after the table first shipped
	personal_activities_columns := `
	ALTER TABLE personal_activities ADD COLUMN IF NOT EXISTS modify_date TIMESTAMPTZ;
	ALTER TABLE personal_activities ADD COLUMN IF NOT EXISTS status VARCHAR(50);
	`

	all_tables := strings.Join([]string{personal_activities_table, personal_activities_columns}, "")

	_, err := s.db.Exec(all_tables)
	return err
}

package database

import (
	"database/sql"

	"github.com/obarcalifa/studentdash-api/model"
)

func (s *PostgreSQLStore) ListActivities(userID, courseID uint) ([]model.PersonalActivity, error) {
	query := `
		SELECT id, user_id, course_id, task_name, due_date, modify_date, status
		FROM personal_activities
		WHERE user_id = $1 AND course_id = $2
		ORDER BY due_date;
	`
	rows, err := s.db.Query(query, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.PersonalActivity{}
	for rows.Next() {
		activity, err := scanIntoActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}

	return activities, rows.Err()
}

func (s *PostgreSQLStore) CreateActivity(activity *model.PersonalActivity) error {
	query := `
		INSERT INTO personal_activities(user_id, course_id, task_name, due_date, modify_date, status)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	return s.db.QueryRow(query,
		activity.UserID,
		activity.CourseID,
		activity.TaskName,
		activity.DueDate,
		activity.ModifyDate,
		activity.Status,
	).Scan(&activity.ID)
}

// DeleteActivity removes an activity scoped to its owner. A miss, including a
// row owned by somebody else, deletes nothing and returns no error.
func (s *PostgreSQLStore) DeleteActivity(id, userID uint) error {
	query := `DELETE FROM personal_activities WHERE id = $1 AND user_id = $2;`

	if _, err := s.db.Exec(query, id, userID); err != nil {
		return err
	}

	return nil
}

func scanIntoActivity(rows *sql.Rows) (*model.PersonalActivity, error) {
	activity := new(model.PersonalActivity)
	err := rows.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.CourseID,
		&activity.TaskName,
		&activity.DueDate,
		&activity.ModifyDate,
		&activity.Status,
	)
	if err != nil {
		return nil, err
	}
	return activity, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/worklog/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, username, date, task_assigned_by, work_assignment, assigned_to_person,
	task_description, work_done_today, task_status, work_plan_next_day,
	expense_purpose, other_purpose, amount, created_at`

// AppendTask stores one task record and returns it with its ID and timestamp.
// A username with no matching account yields ErrUnknownUser.
func (r *TaskRepo) AppendTask(ctx context.Context, task *models.TaskRecord) (*models.TaskRecord, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		id, err = insertTask(ctx, tx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Retrieve the created task to get the timestamp
	stored, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to read back task %d: %w", id, err)
	}
	return stored, nil
}

func insertTask(ctx context.Context, tx *sql.Tx, task *models.TaskRecord) (int64, error) {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (
			username, date, task_assigned_by, work_assignment, assigned_to_person,
			task_description, work_done_today, task_status, work_plan_next_day,
			expense_purpose, other_purpose, amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Username, dateToNullString(task.Date), task.TaskAssignedBy,
		string(task.WorkAssignment), task.AssignedToPerson,
		task.TaskDescription, task.WorkDoneToday, string(task.TaskStatus),
		task.WorkPlanNextDay, task.ExpensePurpose, task.OtherPurpose,
		task.Amount.String(),
	)
	if isConstraintError(err, "FOREIGN KEY") {
		return 0, ErrUnknownUser
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert task for '%s': %w", task.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get task ID after insert: %w", err)
	}
	return id, nil
}

// LoadTasksFor returns every task owned by username, newest date first.
// Tasks without a usable date sort last.
func (r *TaskRepo) LoadTasksFor(ctx context.Context, username string) ([]*models.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks
		 WHERE username = ?
		 ORDER BY date IS NULL, date DESC, id DESC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for '%s': %w", username, err)
	}
	return collectTasks(rows)
}

// LoadAllTasks returns every task in insertion order (used for export)
func (r *TaskRepo) LoadAllTasks(ctx context.Context) ([]*models.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return collectTasks(rows)
}

// CountTasksFor returns how many tasks username has submitted
func (r *TaskRepo) CountTasksFor(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE username = ?`, username,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks for '%s': %w", username, err)
	}
	return count, nil
}

// ImportTasks inserts tasks in one transaction. Tasks whose owner is not
// registered are skipped and counted.
func (r *TaskRepo) ImportTasks(ctx context.Context, tasks []*models.TaskRecord) (inserted, skipped int, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		inserted, skipped = 0, 0
		for _, t := range tasks {
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, t.Username,
			).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check user '%s': %w", t.Username, err)
			}
			if !exists {
				skipped++
				continue
			}
			if _, err := insertTask(ctx, tx, t); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, skipped, err
}

func collectTasks(rows *sql.Rows) ([]*models.TaskRecord, error) {
	defer rows.Close()

	tasks := make([]*models.TaskRecord, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func scanTask(row rowScanner) (*models.TaskRecord, error) {
	task := &models.TaskRecord{}
	var (
		date           sql.NullString
		workAssignment string
		status         string
		createdAt      sql.NullTime
	)
	if err := row.Scan(
		&task.ID, &task.Username, &date, &task.TaskAssignedBy,
		&workAssignment, &task.AssignedToPerson,
		&task.TaskDescription, &task.WorkDoneToday, &status, &task.WorkPlanNextDay,
		&task.ExpensePurpose, &task.OtherPurpose, &task.Amount, &createdAt,
	); err != nil {
		return nil, err
	}

	task.Date = nullStringToDate(date, task.ID)
	task.WorkAssignment = models.WorkAssignment(workAssignment)
	task.TaskStatus = models.TaskStatus(status)
	task.CreatedAt = NullTimeToTime(createdAt)
	return task, nil
}

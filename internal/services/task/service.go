package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/worklog/internal/database"
	"github.com/thenoetrevino/worklog/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	LoadFor(ctx context.Context, username string) ([]*models.TaskRecord, error)
	Summarize(ctx context.Context, username string, asOf time.Time) (*models.Dashboard, error)

	// Write operations
	Submit(ctx context.Context, req SubmitTaskRequest) (*models.TaskRecord, error)
}

// SubmitTaskRequest encapsulates the add-task form
type SubmitTaskRequest struct {
	Username         string
	Date             time.Time
	TaskAssignedBy   string
	WorkAssignment   models.WorkAssignment
	AssignedToPerson string
	TaskDescription  string
	WorkDoneToday    string
	TaskStatus       models.TaskStatus
	WorkPlanNextDay  string
	Expense          models.ExpenseForm
}

// repository defines the data access methods needed by the task service
type repository interface {
	UserExists(ctx context.Context, username string) (bool, error)
	AppendTask(ctx context.Context, task *models.TaskRecord) (*models.TaskRecord, error)
	LoadTasksFor(ctx context.Context, username string) ([]*models.TaskRecord, error)
}

// service implements Service interface
type service struct {
	repo       repository
	windowDays int
	logger     *slog.Logger
}

// NewService creates a new task service. windowDays is how many days back
// the dashboard treats a task as recent; values below 1 use the default.
func NewService(repo repository, windowDays int, logger *slog.Logger) Service {
	if windowDays < 1 {
		windowDays = models.DefaultRecentWindowDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:       repo,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Submit validates the form, reduces the expense entry and stores the task
func (s *service) Submit(ctx context.Context, req SubmitTaskRequest) (*models.TaskRecord, error) {
	if err := s.validateSubmit(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.UserExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check task owner: %w", err)
	}
	if !exists {
		return nil, ErrUnknownUser
	}

	expense := req.Expense.Reduce()
	record := &models.TaskRecord{
		Username:        req.Username,
		Date:            models.Day(req.Date),
		TaskAssignedBy:  strings.TrimSpace(req.TaskAssignedBy),
		WorkAssignment:  req.WorkAssignment,
		TaskDescription: req.TaskDescription,
		WorkDoneToday:   req.WorkDoneToday,
		TaskStatus:      req.TaskStatus,
		WorkPlanNextDay: req.WorkPlanNextDay,
		ExpensePurpose:  expense.Purpose,
		OtherPurpose:    expense.OtherPurpose,
		Amount:          expense.Amount,
	}
	if req.WorkAssignment == models.AssignmentOther {
		record.AssignedToPerson = strings.TrimSpace(req.AssignedToPerson)
	}

	stored, err := s.repo.AppendTask(ctx, record)
	if errors.Is(err, database.ErrUnknownUser) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	s.logger.Info("task saved",
		"task_id", stored.ID,
		"username", stored.Username,
		"date", stored.DateString(),
		"amount", stored.Amount.StringFixed(2),
	)
	return stored, nil
}

// LoadFor returns every task owned by username, newest first
func (s *service) LoadFor(ctx context.Context, username string) ([]*models.TaskRecord, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	tasks, err := s.repo.LoadTasksFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// validateSubmit validates a SubmitTaskRequest
func (s *service) validateSubmit(req SubmitTaskRequest) error {
	if req.Username == "" {
		return ErrMissingUsername
	}
	if req.Date.IsZero() {
		return ErrMissingDate
	}
	if _, err := models.ParseWorkAssignment(string(req.WorkAssignment)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAssignment, req.WorkAssignment)
	}
	if req.WorkAssignment == models.AssignmentOther && strings.TrimSpace(req.AssignedToPerson) == "" {
		return ErrMissingAssignee
	}
	if _, err := models.ParseTaskStatus(string(req.TaskStatus)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.TaskStatus)
	}
	if err := req.Expense.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExpense, err)
	}
	return nil
}

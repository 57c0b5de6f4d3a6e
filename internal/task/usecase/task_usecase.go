package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tasktracker-backend/internal/task/analytics"
	"tasktracker-backend/internal/task/calendar"
	"tasktracker-backend/internal/task/domain"
	"tasktracker-backend/internal/task/query"
	"tasktracker-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (u *taskUsecase) CreateTask(req TaskCreateRequest) (*domain.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	category := domain.CategoryPersonal
	if req.Category != "" {
		if category, err = domain.ParseCategory(req.Category); err != nil {
			return nil, err
		}
	}
	priority := domain.PriorityMedium
	if req.Priority != "" {
		if priority, err = domain.ParsePriority(req.Priority); err != nil {
			return nil, err
		}
	}
	status := domain.StatusPending
	if req.Status != "" {
		if status, err = domain.ParseStatus(req.Status); err != nil {
			return nil, err
		}
	}

	now := u.now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Category:    category,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == domain.StatusCompleted {
		task.CompletedAt = &now
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(taskID string) (*domain.Task, error) {
	return u.taskRepo.FindByID(taskID)
}

func (u *taskUsecase) ListTasks(f domain.Filter) ([]domain.Task, error) {
	tasks, err := u.taskRepo.List(f)
	if err != nil {
		return nil, err
	}
	return query.Apply(tasks, f), nil
}

func (u *taskUsecase) UpdateTask(taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.DueDate != nil && *updates.DueDate != "" {
		due, err := parseDueDate(*updates.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if updates.Category != nil {
		c, err := domain.ParseCategory(*updates.Category)
		if err != nil {
			return nil, err
		}
		task.Category = c
	}
	if updates.Priority != nil {
		p, err := domain.ParsePriority(*updates.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = p
	}
	if updates.Status != nil {
		s, err := domain.ParseStatus(*updates.Status)
		if err != nil {
			return nil, err
		}
		u.applyStatus(task, s)
	}

	task.UpdatedAt = u.now()
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) UpdateTaskStatus(taskID string, status string) (*domain.Task, error) {
	s, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}

	u.applyStatus(task, s)
	task.UpdatedAt = u.now()
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(taskID string) error {
	return u.taskRepo.Delete(taskID)
}

func (u *taskUsecase) Summary() (analytics.Summary, error) {
	tasks, err := u.taskRepo.List(domain.MatchAll())
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(tasks), nil
}

func (u *taskUsecase) Trends(windowWeeks int, ref time.Time) ([]analytics.WeekPoint, error) {
	tasks, err := u.taskRepo.List(domain.MatchAll())
	if err != nil {
		return nil, err
	}
	return analytics.Trends(tasks, windowWeeks, ref), nil
}

func (u *taskUsecase) MonthView(ref, today time.Time) ([]calendar.DayBucket, error) {
	tasks, err := u.taskRepo.List(domain.MatchAll())
	if err != nil {
		return nil, err
	}
	return calendar.MonthView(tasks, ref, today), nil
}

func (u *taskUsecase) WeekView(ref, today time.Time) ([]calendar.DayBucket, error) {
	tasks, err := u.taskRepo.List(domain.MatchAll())
	if err != nil {
		return nil, err
	}
	return calendar.WeekView(tasks, ref, today), nil
}

// applyStatus transitions a task's status, keeping the invariant that
// completed_at is present exactly when the status is completed.
func (u *taskUsecase) applyStatus(task *domain.Task, status domain.Status) {
	if task.Status == status {
		return
	}
	task.Status = status
	if status == domain.StatusCompleted {
		now := u.now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

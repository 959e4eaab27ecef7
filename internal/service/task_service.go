package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// ErrTaskNotFound is returned when an update targets an absent task id.
var ErrTaskNotFound = errors.New("task not found")

// TaskService wraps task mutations together with the stats
// recomputation pass so every call is atomic.
type TaskService struct {
	db    *gorm.DB
	tasks *repository.TaskRepository
	stats *repository.StatsRepository
}

func NewTaskService(db *gorm.DB, tasks *repository.TaskRepository, stats *repository.StatsRepository) *TaskService {
	return &TaskService{db: db, tasks: tasks, stats: stats}
}

// List returns the user's tasks sorted by position.
func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// Create stores a new task with defaults filled for omitted fields and
// refreshes the owner's stats projection.
func (s *TaskService) Create(ctx context.Context, userID string, input model.TaskInput) (*model.Task, error) {
	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    model.PriorityMedium,
		CategoryID:  input.CategoryID,
		DueTime:     input.DueTime,
		UserID:      userID,
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.Progress != nil {
		task.Progress = *input.Progress
	}
	if input.Position != nil {
		task.Position = *input.Position
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tasks.WithTx(tx).Create(ctx, &task); err != nil {
			return err
		}
		return recomputeStats(ctx, tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update merges the patch's non-nil fields over the stored task. A
// patch that carries completed triggers the stats pass whether or not
// the value actually changed.
func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error) {
	var updated *model.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		task, err := tasks.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if task == nil {
			return ErrTaskNotFound
		}

		applyPatch(task, patch)
		if err := tasks.Save(ctx, task); err != nil {
			return err
		}
		if patch.Completed != nil {
			if err := recomputeStats(ctx, tx, task.UserID); err != nil {
				return err
			}
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the task and refreshes its owner's stats. Absent ids
// are a silent success.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		task, err := tasks.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if task == nil {
			return nil
		}
		if err := tasks.Delete(ctx, id); err != nil {
			return err
		}
		return recomputeStats(ctx, tx, task.UserID)
	})
}

// Reorder assigns each listed id the position of its index. Unknown
// ids are skipped; tasks omitted from the list keep their position.
func (s *TaskService) Reorder(ctx context.Context, taskIDs []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		for i, id := range taskIDs {
			if err := tasks.SetPosition(ctx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func applyPatch(task *model.Task, patch model.TaskPatch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		task.CategoryID = patch.CategoryID
	}
	if patch.Progress != nil {
		task.Progress = *patch.Progress
	}
	if patch.DueTime != nil {
		task.DueTime = patch.DueTime
	}
	if patch.Position != nil {
		task.Position = *patch.Position
	}
}

// recomputeStats refreshes the derived projection (totalTasks,
// completedTasks, lastActiveDate) after a task mutation. It never
// touches currentStreak or weeklyProgress.
func recomputeStats(ctx context.Context, tx *gorm.DB, userID string) error {
	total, completed, err := repository.NewTaskRepository(tx).Counts(ctx, userID)
	if err != nil {
		return err
	}
	t, c := int(total), int(completed)
	now := time.Now()
	_, err = repository.NewStatsRepository(tx).Merge(ctx, userID, model.StatsPatch{
		TotalTasks:     &t,
		CompletedTasks: &c,
		LastActiveDate: &now,
	})
	return err
}

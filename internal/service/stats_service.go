package service

import (
	"context"

	"gorm.io/gorm"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// StatsService exposes the per-user stats row and the background
// reconciliation sweep.
type StatsService struct {
	db    *gorm.DB
	stats *repository.StatsRepository
	tasks *repository.TaskRepository
}

func NewStatsService(db *gorm.DB, stats *repository.StatsRepository, tasks *repository.TaskRepository) *StatsService {
	return &StatsService{db: db, stats: stats, tasks: tasks}
}

// Get returns the user's stats row, or nil when none exists yet.
func (s *StatsService) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	return s.stats.FindByUser(ctx, userID)
}

// Update merges the patch over the user's stats, creating a zero-valued
// row on first write. This is the only path that can change
// currentStreak or weeklyProgress.
func (s *StatsService) Update(ctx context.Context, userID string, patch model.StatsPatch) (*model.UserStats, error) {
	return s.stats.Merge(ctx, userID, patch)
}

// Reconcile re-derives totalTasks/completedTasks for every user with a
// stats row. Unlike the post-mutation pass it leaves lastActiveDate
// alone, so a background sweep never masquerades as user activity.
func (s *StatsService) Reconcile(ctx context.Context) error {
	userIDs, err := s.stats.ListUserIDs(ctx)
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			total, completed, err := s.tasks.WithTx(tx).Counts(ctx, userID)
			if err != nil {
				return err
			}
			t, c := int(total), int(completed)
			_, err = s.stats.WithTx(tx).Merge(ctx, userID, model.StatsPatch{
				TotalTasks:     &t,
				CompletedTasks: &c,
			})
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// StatsRepository handles the per-user stats rows.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *StatsRepository) WithTx(tx *gorm.DB) *StatsRepository {
	return &StatsRepository{db: tx}
}

// FindByUser returns the user's stats row or (nil, nil) when none exists.
func (r *StatsRepository) FindByUser(ctx context.Context, userID string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).First(&stats, "user_id = ?", userID).Error
	switch {
	case err == nil:
		return &stats, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find stats: %w", err)
	}
}

// ListUserIDs returns every user id that has a stats row.
func (r *StatsRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&model.UserStats{}).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list stats users: %w", err)
	}
	return ids, nil
}

// Merge applies the patch over the user's stats row, creating a
// zero-valued row first if the user has none yet.
func (r *StatsRepository) Merge(ctx context.Context, userID string, patch model.StatsPatch) (*model.UserStats, error) {
	stats, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	fresh := stats == nil
	if fresh {
		stats = &model.UserStats{
			ID:             uuid.NewString(),
			UserID:         userID,
			WeeklyProgress: model.WeekProgress{},
		}
	}

	if patch.CurrentStreak != nil {
		stats.CurrentStreak = *patch.CurrentStreak
	}
	if patch.TotalTasks != nil {
		stats.TotalTasks = *patch.TotalTasks
	}
	if patch.CompletedTasks != nil {
		stats.CompletedTasks = *patch.CompletedTasks
	}
	if patch.WeeklyProgress != nil {
		stats.WeeklyProgress = patch.WeeklyProgress
	}
	if patch.LastActiveDate != nil {
		stats.LastActiveDate = patch.LastActiveDate
	}

	// Save would issue a bare UPDATE for a row that does not exist yet,
	// since the id is already assigned.
	if fresh {
		if err := r.db.WithContext(ctx).Create(stats).Error; err != nil {
			return nil, fmt.Errorf("create stats: %w", err)
		}
		return stats, nil
	}
	if err := r.db.WithContext(ctx).Save(stats).Error; err != nil {
		return nil, fmt.Errorf("save stats: %w", err)
	}
	return stats, nil
}

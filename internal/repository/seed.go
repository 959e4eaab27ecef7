package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// Seed installs the demo user's starter data: a few categories and a
// stats row with seeded streak and weekly-progress figures. It runs
// only when the user has neither categories nor stats, so restarts
// against a persistent database leave existing data alone.
func Seed(ctx context.Context, db *gorm.DB, userID string) error {
	categories := NewCategoryRepository(db)
	stats := NewStatsRepository(db)

	existing, err := categories.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	current, err := stats.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 || current != nil {
		return nil
	}

	defaults := []model.Category{
		{Name: "Work", Color: "blue", UserID: userID},
		{Name: "Personal", Color: "green", UserID: userID},
		{Name: "Learning", Color: "purple", UserID: userID},
	}
	for i := range defaults {
		if err := categories.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}

	streak := 12
	now := time.Now()
	_, err = stats.Merge(ctx, userID, model.StatsPatch{
		CurrentStreak: &streak,
		WeeklyProgress: model.WeekProgress{
			"Monday":    100,
			"Tuesday":   80,
			"Wednesday": 70,
			"Thursday":  0,
			"Friday":    0,
			"Saturday":  0,
			"Sunday":    0,
		},
		LastActiveDate: &now,
	})
	return err
}

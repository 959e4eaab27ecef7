package model

import "time"

// WeekProgress maps weekday names to 0-100 completion percentages.
// The figures are seeded display data; task mutations never touch them.
type WeekProgress map[string]int

// UserStats holds one row of productivity figures per user.
// TotalTasks, CompletedTasks and LastActiveDate are a derived
// projection of the user's task set, refreshed after every task
// create, delete or completion change. CurrentStreak and
// WeeklyProgress only change through the stats-update path.
type UserStats struct {
	ID             string       `gorm:"primaryKey" json:"id"`
	UserID         string       `gorm:"uniqueIndex" json:"userId"`
	CurrentStreak  int          `json:"currentStreak"`
	TotalTasks     int          `json:"totalTasks"`
	CompletedTasks int          `json:"completedTasks"`
	WeeklyProgress WeekProgress `gorm:"serializer:json" json:"weeklyProgress"`
	LastActiveDate *time.Time   `json:"lastActiveDate"`
}

// StatsPatch merges the non-nil fields over a stored stats row.
type StatsPatch struct {
	CurrentStreak  *int
	TotalTasks     *int
	CompletedTasks *int
	WeeklyProgress WeekProgress
	LastActiveDate *time.Time
}

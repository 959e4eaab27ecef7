package model

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single item on the board. Position defines the
// display order within a user's list; values are dense 0..n-1 only
// right after a reorder. CategoryID may dangle after its category is
// deleted; tasks and categories are deliberately loosely coupled.
type Task struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"` // low, medium, high
	CategoryID  *string   `gorm:"index" json:"categoryId"`
	Progress    int       `json:"progress"` // 0-100
	DueTime     *string   `json:"dueTime"`
	Position    int       `json:"position"`
	UserID      string    `gorm:"index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskInput is the payload accepted when creating a task. Only the
// title is required; everything else falls back to store defaults.
type TaskInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	CategoryID  *string `json:"categoryId"`
	Progress    *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
	DueTime     *string `json:"dueTime"`
	Position    *int    `json:"position"`
}

// TaskPatch carries the fields a PATCH request may change. Nil fields
// are left untouched on the stored record.
type TaskPatch struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	CategoryID  *string `json:"categoryId"`
	Progress    *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
	DueTime     *string `json:"dueTime"`
	Position    *int    `json:"position"`
}

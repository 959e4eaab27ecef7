package model

// Category groups tasks by area (work, personal, learning, etc.).
// Categories are immutable after creation; there is no update path.
type Category struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
	// Color is one of the client palette names
	// (blue, green, purple, orange, red, pink).
	Color  string `json:"color"`
	UserID string `gorm:"index" json:"userId"`
}

// CategoryInput is the payload accepted when creating a category.
type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

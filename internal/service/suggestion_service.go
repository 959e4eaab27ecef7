package service

import "taskdeck/internal/model"

// SuggestionService serves the static prompt menu shown next to the
// board. The entries are fixed; they are not derived from task data.
type SuggestionService struct{}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

func (s *SuggestionService) List() []model.Suggestion {
	return []model.Suggestion{
		{ID: "1", Text: "Review weekly goals", Icon: "lightbulb"},
		{ID: "2", Text: "Take a break", Icon: "coffee"},
		{ID: "3", Text: "Read documentation", Icon: "book-open"},
		{ID: "4", Text: "Update project status", Icon: "clipboard"},
		{ID: "5", Text: "Plan tomorrow", Icon: "calendar"},
	}
}

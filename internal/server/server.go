package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/service"
)

// Server wires the HTTP routes to the service layer. Every request is
// scoped to the single configured user identity; there is no auth.
type Server struct {
	router      *gin.Engine
	userID      string
	categories  *service.CategoryService
	tasks       *service.TaskService
	stats       *service.StatsService
	suggestions *service.SuggestionService
}

func New(userID string, categories *service.CategoryService, tasks *service.TaskService, stats *service.StatsService, suggestions *service.SuggestionService) *Server {
	router := gin.Default()

	s := &Server{
		router:      router,
		userID:      userID,
		categories:  categories,
		tasks:       tasks,
		stats:       stats,
		suggestions: suggestions,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)
		api.DELETE("/categories/:id", s.handleDeleteCategory)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.PATCH("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.POST("/tasks/reorder", s.handleReorderTasks)

		api.GET("/stats", s.handleStats)
		api.GET("/suggestions", s.handleSuggestions)
	}

	return s
}

// Handler exposes the router so main can run it under an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
	"taskdeck/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	return New(
		"demo-user",
		service.NewCategoryService(categoryRepo),
		service.NewTaskService(db, taskRepo, statsRepo),
		service.NewStatsService(db, statsRepo, taskRepo),
		service.NewSuggestionService(),
	)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestCategoryEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("create requires name and color", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/categories", gin.H{"name": "Work"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})

	t.Run("create and list", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/categories", gin.H{"name": "Work", "color": "blue"})
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "demo-user", created.UserID)

		w = doJSON(t, srv, http.MethodGet, "/api/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []model.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodDelete, "/api/categories/not-there", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("create requires a title", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"description": "no title"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects out-of-range progress", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"title": "x", "progress": 150})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch rejects malformed values", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPatch, "/api/tasks/some-id", gin.H{"completed": "yes"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch of an absent task reports 400", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPatch, "/api/tasks/missing", gin.H{"completed": true})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Task not found")
	})

	t.Run("delete of an absent task succeeds", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodDelete, "/api/tasks/missing", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("reorder requires taskIds", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/tasks/reorder", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reorder flips two tasks", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"title": "a", "position": 0})
		require.Equal(t, http.StatusCreated, w.Code)
		var taskA model.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskA))

		w = doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"title": "b", "position": 1})
		require.Equal(t, http.StatusCreated, w.Code)
		var taskB model.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskB))

		w = doJSON(t, srv, http.MethodPost, "/api/tasks/reorder", gin.H{"taskIds": []string{taskB.ID, taskA.ID}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())

		w = doJSON(t, srv, http.MethodGet, "/api/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []model.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, taskB.ID, list[0].ID)
		assert.Equal(t, taskA.ID, list[1].ID)
	})
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("no stats row serializes as null", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("reflects task activity", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"title": "counted"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, srv, http.MethodGet, "/api/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stats model.UserStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.TotalTasks)
		assert.Equal(t, 0, stats.CompletedTasks)
	})
}

func TestSuggestionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/suggestions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var suggestions []model.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 5)
	assert.Equal(t, "Review weekly goals", suggestions[0].Text)
	assert.Equal(t, "lightbulb", suggestions[0].Icon)
}

// Mirrors the first-run flow: a category, a task filed under it, and
// the stats projection after one creation.
func TestCreateCategoryThenTaskScenario(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/categories", gin.H{"name": "Work", "color": "blue"})
	require.Equal(t, http.StatusCreated, w.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	w = doJSON(t, srv, http.MethodPost, "/api/tasks", gin.H{"title": "Write report", "categoryId": category.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CategoryID)
	assert.Equal(t, category.ID, *tasks[0].CategoryID)

	w = doJSON(t, srv, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats model.UserStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
}

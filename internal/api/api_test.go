package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-planner/internal/logger"
	"resource-planner/internal/model"
	"resource-planner/internal/repository"
	"resource-planner/internal/schedule"
	"resource-planner/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	resourceRepo := repository.NewResourceRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	planner := service.NewPlannerService(resourceRepo, taskRepo)
	return NewServer(planner, resourceRepo, taskRepo, logger.New("api-test")).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResourceAndTaskCRUD(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/resources", map[string]any{
		"name": "Aurora Explorer", "type": "Vessel", "color": "#0B1E41",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var res model.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.TypeVessel, res.Type)

	w = doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"resource_id": res.ID, "title": "Cable lay",
		"start_date": "2025-01-04", "end_date": "2025-01-15", "status": "In Progress",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task model.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, model.StatusInProgress, task.Status)

	w = doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 1)

	// Deleting the resource cascades to its tasks.
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/resources/%d", res.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Empty(t, tasks)
}

func TestCreateTaskValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"resource_id": 1, "title": "",
		"start_date": "2025-01-04", "end_date": "2025-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"resource_id": 999, "title": "Orphan",
		"start_date": "2025-01-04", "end_date": "2025-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResourceValidation(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/resources", map[string]any{
		"name": "Drone One", "type": "Drone",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResourceNotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/resources/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUtilizationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/resources", map[string]any{
		"name": "Aurora", "type": "Vessel",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var res model.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	w = doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"resource_id": res.ID, "title": "Cable lay",
		"start_date": "2025-01-04", "end_date": "2025-01-15", "status": "In Progress",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/schedule/utilization?start=2025-01-01&end=2025-01-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []schedule.UtilizationRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].BusyDays)
	assert.Equal(t, 31, rows[0].AvailableDays)
	assert.Equal(t, 38.7, rows[0].Utilization)
}

func TestScheduleEndpointRejectsBadParams(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/schedule/timeline?start=2025-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/schedule/timeline?start=bad&end=2025-01-31", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/schedule/calendar?types=Drone", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseScheduleQuery(t *testing.T) {
	q, err := parseScheduleQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, q.Types)
	assert.Nil(t, q.Labels)
	assert.Nil(t, q.Statuses)
	assert.Nil(t, q.Window)

	// Present but empty is an empty set, not "all".
	q, err = parseScheduleQuery(url.Values{"types": {""}})
	require.NoError(t, err)
	require.NotNil(t, q.Types)
	assert.Empty(t, q.Types)

	q, err = parseScheduleQuery(url.Values{
		"types":    {"Vessel,Person"},
		"statuses": {"Planned, In Progress"},
		"labels":   {"Vessel – Aurora"},
		"start":    {"2025-01-01"},
		"end":      {"2025-01-31"},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.ResourceType{model.TypeVessel, model.TypePerson}, q.Types)
	assert.Equal(t, []model.TaskStatus{model.StatusPlanned, model.StatusInProgress}, q.Statuses)
	assert.Equal(t, []string{"Vessel – Aurora"}, q.Labels)
	require.NotNil(t, q.Window)
	assert.Equal(t, 31, q.Window.Days())

	_, err = parseScheduleQuery(url.Values{"statuses": {"Cancelled"}})
	assert.Error(t, err)
}

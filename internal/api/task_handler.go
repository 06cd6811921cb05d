package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resource-planner/internal/model"
)

type taskRequest struct {
	ResourceID  uint   `json:"resource_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

// toTask validates the payload and maps it onto a task. The resource must
// exist; a reversed date range is stored as-is and simply never produces
// occupancy downstream.
func (s *Server) toTask(c *gin.Context, req taskRequest, task *model.Task) bool {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return false
	}
	status := model.TaskStatus(req.Status)
	if req.Status == "" {
		status = model.StatusPlanned
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return false
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return false
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return false
	}
	if _, err := s.resourceRepo.FindByID(c.Request.Context(), req.ResourceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource does not exist"})
		return false
	}
	task.ResourceID = req.ResourceID
	task.Title = title
	task.Description = strings.TrimSpace(req.Description)
	task.StartDate = start
	task.EndDate = end
	task.Status = status
	return true
}

func (s *Server) listTasks(c *gin.Context) {
	if raw := c.Query("resource_id"); raw != "" {
		resourceID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource_id"})
			return
		}
		tasks, err := s.taskRepo.ListByResource(c.Request.Context(), uint(resourceID))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}
	tasks, err := s.taskRepo.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var task model.Task
	if !s.toTask(c, req, &task) {
		return
	}
	if err := s.taskRepo.Create(c.Request.Context(), &task); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := s.taskRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := s.taskRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.toTask(c, req, task) {
		return
	}
	if err := s.taskRepo.Update(c.Request.Context(), task); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.taskRepo.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

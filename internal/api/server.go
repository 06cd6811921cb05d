// Package api exposes the planner over a JSON HTTP API.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"resource-planner/internal/repository"
	"resource-planner/internal/service"
)

// Server wires repositories and the planner service into HTTP routes.
type Server struct {
	planner      *service.PlannerService
	resourceRepo *repository.ResourceRepository
	taskRepo     *repository.TaskRepository
	log          zerolog.Logger
}

func NewServer(planner *service.PlannerService, resourceRepo *repository.ResourceRepository, taskRepo *repository.TaskRepository, log zerolog.Logger) *Server {
	return &Server{
		planner:      planner,
		resourceRepo: resourceRepo,
		taskRepo:     taskRepo,
		log:          log,
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/resources", s.listResources)
		api.POST("/resources", s.createResource)
		api.GET("/resources/:id", s.getResource)
		api.PUT("/resources/:id", s.updateResource)
		api.DELETE("/resources/:id", s.deleteResource)

		api.GET("/tasks", s.listTasks)
		api.POST("/tasks", s.createTask)
		api.GET("/tasks/:id", s.getTask)
		api.PUT("/tasks/:id", s.updateTask)
		api.DELETE("/tasks/:id", s.deleteTask)

		api.GET("/schedule/timeline", s.getTimeline)
		api.GET("/schedule/calendar", s.getCalendar)
		api.GET("/schedule/utilization", s.getUtilization)
		api.GET("/schedule/watchlist", s.getWatchlist)
		api.GET("/dashboard", s.getDashboard)
	}
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail logs and maps an error to a response, turning gorm's record-not-found
// into a 404.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

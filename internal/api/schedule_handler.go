package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resource-planner/internal/model"
	"resource-planner/internal/schedule"
	"resource-planner/internal/service"
)

// parseScheduleQuery maps query params onto a planner query. Set params
// (`types`, `labels`, `statuses`) are comma-separated; an absent param means
// "all" while a present-but-empty one is honored as an empty set. `start`
// and `end` must be supplied together as YYYY-MM-DD.
func parseScheduleQuery(values url.Values) (service.Query, error) {
	var q service.Query

	if values.Has("types") {
		q.Types = []model.ResourceType{}
		for _, raw := range splitParam(values.Get("types")) {
			t := model.ResourceType(raw)
			if !t.Valid() {
				return q, fmt.Errorf("unknown resource type %q", raw)
			}
			q.Types = append(q.Types, t)
		}
	}
	if values.Has("labels") {
		q.Labels = []string{}
		q.Labels = append(q.Labels, splitParam(values.Get("labels"))...)
	}
	if values.Has("statuses") {
		q.Statuses = []model.TaskStatus{}
		for _, raw := range splitParam(values.Get("statuses")) {
			st := model.TaskStatus(raw)
			if !st.Valid() {
				return q, fmt.Errorf("unknown status %q", raw)
			}
			q.Statuses = append(q.Statuses, st)
		}
	}

	hasStart, hasEnd := values.Has("start"), values.Has("end")
	if hasStart != hasEnd {
		return q, fmt.Errorf("start and end must be supplied together")
	}
	if hasStart {
		start, err := time.Parse("2006-01-02", values.Get("start"))
		if err != nil {
			return q, fmt.Errorf("start must be YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", values.Get("end"))
		if err != nil {
			return q, fmt.Errorf("end must be YYYY-MM-DD")
		}
		window := schedule.NewWindow(start, end)
		q.Window = &window
	}
	return q, nil
}

func splitParam(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) getTimeline(c *gin.Context) {
	q, err := parseScheduleQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := s.planner.Timeline(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) getCalendar(c *gin.Context) {
	q, err := parseScheduleQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	occupancy, err := s.planner.Calendar(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, occupancy)
}

func (s *Server) getUtilization(c *gin.Context) {
	q, err := parseScheduleQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := s.planner.Utilization(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getWatchlist(c *gin.Context) {
	q, err := parseScheduleQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := s.planner.Watchlist(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getDashboard(c *gin.Context) {
	q, err := parseScheduleQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := s.planner.Dashboard(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

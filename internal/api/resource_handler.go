package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resource-planner/internal/model"
)

type resourceRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Color  string `json:"color"`
	Active *bool  `json:"active"`
}

func (req resourceRequest) validate() (model.ResourceType, string, bool) {
	name := strings.TrimSpace(req.Name)
	rtype := model.ResourceType(req.Type)
	return rtype, name, name != "" && rtype.Valid()
}

func (s *Server) listResources(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resources, err := s.resourceRepo.List(c.Request.Context(), !includeInactive)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (s *Server) createResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rtype, name, ok := req.validate()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a valid type are required"})
		return
	}
	resource := model.Resource{
		Name:   name,
		Type:   rtype,
		Color:  strings.TrimSpace(req.Color),
		Active: true,
	}
	if req.Active != nil {
		resource.Active = *req.Active
	}
	if err := s.resourceRepo.Create(c.Request.Context(), &resource); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

func (s *Server) getResource(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resource, err := s.resourceRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

func (s *Server) updateResource(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resource, err := s.resourceRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rtype, name, valid := req.validate()
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a valid type are required"})
		return
	}
	resource.Name = name
	resource.Type = rtype
	resource.Color = strings.TrimSpace(req.Color)
	if req.Active != nil {
		resource.Active = *req.Active
	}
	if err := s.resourceRepo.Update(c.Request.Context(), resource); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

func (s *Server) deleteResource(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.resourceRepo.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

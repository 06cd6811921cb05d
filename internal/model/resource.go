package model

import (
	"fmt"
	"time"
)

// ResourceType classifies a schedulable entity.
type ResourceType string

const (
	TypeVessel  ResourceType = "Vessel"
	TypeProject ResourceType = "Project"
	TypePerson  ResourceType = "Person"
)

// ResourceTypes lists the known types in display precedence order.
var ResourceTypes = []ResourceType{TypeVessel, TypeProject, TypePerson}

// Valid reports whether t is one of the known resource types.
func (t ResourceType) Valid() bool {
	switch t {
	case TypeVessel, TypeProject, TypePerson:
		return true
	}
	return false
}

// Resource is a schedulable entity (vessel, project or person) that tasks
// are assigned to.
type Resource struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      string       `json:"name"`
	Type      ResourceType `gorm:"index:idx_resource_type_name" json:"type"`
	Color     string       `json:"color,omitempty"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Tasks     []Task       `gorm:"foreignKey:ResourceID" json:"-"`
}

// Label returns the composite display label ("<type> – <name>") used as the
// join key in filtering, timeline axes and selection. (type, name) pairs are
// expected to be unique; duplicates would merge in downstream views.
func (r Resource) Label() string {
	return fmt.Sprintf("%s – %s", r.Type, r.Name)
}

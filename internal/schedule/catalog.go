package schedule

import "resource-planner/internal/model"

// Catalog is a point-in-time snapshot of resource records with an id lookup
// built once, so filtering and expansion resolve owning resources without
// repeated scans. The catalog preserves the order its resources arrived in;
// the store lists them by type then name.
type Catalog struct {
	resources []model.Resource
	byID      map[uint]model.Resource
}

// NewCatalog indexes the given resources by id.
func NewCatalog(resources []model.Resource) *Catalog {
	c := &Catalog{
		resources: resources,
		byID:      make(map[uint]model.Resource, len(resources)),
	}
	for _, r := range resources {
		c.byID[r.ID] = r
	}
	return c
}

// Resources returns the snapshot in catalog order.
func (c *Catalog) Resources() []model.Resource {
	return c.resources
}

// Lookup resolves a resource by id.
func (c *Catalog) Lookup(id uint) (model.Resource, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Labels returns every resource label in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.resources))
	for _, r := range c.resources {
		labels = append(labels, r.Label())
	}
	return labels
}

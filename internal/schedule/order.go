package schedule

import "resource-planner/internal/model"

// OrderedLabels returns resource labels grouped by type in the fixed
// precedence Vessel, Project, Person, preserving the catalog's relative
// order within each group. Consumers use it as a stable category axis so
// repeated renders with changing filters keep resources in place.
// Resources of an unrecognized type are appended as a trailing group.
func (c *Catalog) OrderedLabels() []string {
	groups := make(map[model.ResourceType][]string, len(model.ResourceTypes))
	var trailing []string
	for _, r := range c.resources {
		if r.Type.Valid() {
			groups[r.Type] = append(groups[r.Type], r.Label())
		} else {
			trailing = append(trailing, r.Label())
		}
	}
	out := make([]string, 0, len(c.resources))
	for _, t := range model.ResourceTypes {
		out = append(out, groups[t]...)
	}
	return append(out, trailing...)
}

package schedule

import "resource-planner/internal/model"

// Filter selects tasks matching categorical allow-sets and an optional date
// window. An empty allow-set matches nothing; there is no implicit
// "allow all". A nil Window applies no date filtering.
type Filter struct {
	Types    []model.ResourceType
	Labels   []string
	Statuses []model.TaskStatus
	Window   *Window
}

// Apply returns the tasks whose owning resource type and label are allowed,
// whose status is allowed, and whose interval intersects the window
// (inclusive on both ends: start ≤ window end and end ≥ window start).
// Tasks referencing a resource missing from the catalog are dropped.
func (f Filter) Apply(tasks []model.Task, catalog *Catalog) []model.Task {
	types := make(map[model.ResourceType]struct{}, len(f.Types))
	for _, t := range f.Types {
		types[t] = struct{}{}
	}
	labels := make(map[string]struct{}, len(f.Labels))
	for _, l := range f.Labels {
		labels[l] = struct{}{}
	}
	statuses := make(map[model.TaskStatus]struct{}, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses[s] = struct{}{}
	}

	var out []model.Task
	for _, task := range tasks {
		res, ok := catalog.Lookup(task.ResourceID)
		if !ok {
			continue
		}
		if _, ok := types[res.Type]; !ok {
			continue
		}
		if _, ok := labels[res.Label()]; !ok {
			continue
		}
		if _, ok := statuses[task.Status]; !ok {
			continue
		}
		if f.Window != nil && !f.Window.Overlaps(task.StartDate, task.EndDate) {
			continue
		}
		out = append(out, task)
	}
	return out
}

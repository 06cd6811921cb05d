package schedule

import (
	"time"

	"resource-planner/internal/model"
)

// Occupancy marks one resource as busy on one calendar day because of one
// task. Overlapping tasks yield multiple records for the same (resource,
// day) pair; that multiplicity is what task-density views count.
type Occupancy struct {
	Date         time.Time          `json:"date"`
	ResourceID   uint               `json:"resource_id"`
	ResourceName string             `json:"resource_name"`
	ResourceType model.ResourceType `json:"resource_type"`
	Status       model.TaskStatus   `json:"status"`
	Title        string             `json:"title"`
}

// Expand explodes tasks into one Occupancy per calendar day, clamping each
// task to [max(start, clamp.Start), min(end, clamp.End)] when a clamp window
// is supplied. A task whose effective interval is empty after clamping, or
// whose stored end already precedes its start, contributes zero records.
// Tasks referencing a resource missing from the catalog are skipped. Output
// order is not guaranteed; consumers needing determinism must sort.
func Expand(tasks []model.Task, catalog *Catalog, clamp *Window) []Occupancy {
	var out []Occupancy
	for _, task := range tasks {
		res, ok := catalog.Lookup(task.ResourceID)
		if !ok {
			continue
		}
		start, end := Day(task.StartDate), Day(task.EndDate)
		if clamp != nil {
			if s := Day(clamp.Start); start.Before(s) {
				start = s
			}
			if e := Day(clamp.End); end.After(e) {
				end = e
			}
		}
		if start.After(end) {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			out = append(out, Occupancy{
				Date:         d,
				ResourceID:   res.ID,
				ResourceName: res.Name,
				ResourceType: res.Type,
				Status:       task.Status,
				Title:        task.Title,
			})
		}
	}
	return out
}

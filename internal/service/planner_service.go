package service

import (
	"context"
	"math"
	"sort"
	"time"

	"resource-planner/internal/model"
	"resource-planner/internal/repository"
	"resource-planner/internal/schedule"
)

// Query carries the filter parameters for schedule views. Nil set fields
// mean "all"; empty non-nil sets are passed through and match nothing. A
// nil window defaults to the task set's overall [min start, max end].
type Query struct {
	Types    []model.ResourceType
	Labels   []string
	Statuses []model.TaskStatus
	Window   *schedule.Window
}

// TaskItem is a task joined with its owning resource's display metadata,
// the shape handed to presentation consumers.
type TaskItem struct {
	model.Task
	ResourceName  string             `json:"resource_name"`
	ResourceType  model.ResourceType `json:"resource_type"`
	ResourceLabel string             `json:"resource_label"`
	ResourceColor string             `json:"resource_color,omitempty"`
}

// TimelineView is the filtered task list plus the stable label axis.
type TimelineView struct {
	Window schedule.Window `json:"window"`
	Order  []string        `json:"order"`
	Tasks  []TaskItem      `json:"tasks"`
}

// WeekLoad is one resource's distinct busy days within one ISO week.
type WeekLoad struct {
	WeekStart    time.Time `json:"week_start"`
	ResourceName string    `json:"resource_name"`
	BusyDays     int       `json:"busy_days"`
}

// BusyResource names a resource together with its distinct busy days.
type BusyResource struct {
	ResourceName string `json:"resource_name"`
	BusyDays     int    `json:"busy_days"`
}

// DashboardSummary aggregates the KPI view over one window.
type DashboardSummary struct {
	Window          schedule.Window            `json:"window"`
	TotalTasks      int                        `json:"total_tasks"`
	ActiveResources int                        `json:"active_resources"`
	Busiest         *BusyResource              `json:"busiest,omitempty"`
	AvgUtilization  float64                    `json:"avg_utilization"`
	StatusMix       map[model.TaskStatus]int   `json:"status_mix"`
	WorkloadByType  map[model.ResourceType]int `json:"workload_by_type"`
	WeeklyLoad      []WeekLoad                 `json:"weekly_load"`
	TopBusy         []BusyResource             `json:"top_busy"`
	Leave           []TaskItem                 `json:"leave"`
	Upcoming        []TaskItem                 `json:"upcoming"`
	Watchlist       []schedule.UtilizationRow  `json:"watchlist"`
	Utilization     []schedule.UtilizationRow  `json:"utilization"`
}

// PlannerService fetches a consistent snapshot from the store and runs the
// scheduling engine over it.
type PlannerService struct {
	resourceRepo *repository.ResourceRepository
	taskRepo     *repository.TaskRepository
}

func NewPlannerService(resourceRepo *repository.ResourceRepository, taskRepo *repository.TaskRepository) *PlannerService {
	return &PlannerService{resourceRepo: resourceRepo, taskRepo: taskRepo}
}

type snapshot struct {
	catalog *schedule.Catalog
	tasks   []model.Task
}

func (s *PlannerService) snapshot(ctx context.Context) (*snapshot, error) {
	resources, err := s.resourceRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{catalog: schedule.NewCatalog(resources), tasks: tasks}, nil
}

// resolve fills the query's open dimensions: nil sets widen to everything
// known, a nil window widens to the task set's own bounds.
func (s *PlannerService) resolve(snap *snapshot, q Query) (schedule.Filter, schedule.Window) {
	types := q.Types
	if types == nil {
		types = model.ResourceTypes
	}
	labels := q.Labels
	if labels == nil {
		labels = snap.catalog.Labels()
	}
	statuses := q.Statuses
	if statuses == nil {
		statuses = model.TaskStatuses
	}
	var window schedule.Window
	if q.Window != nil {
		window = *q.Window
	} else {
		window = taskBounds(snap.tasks)
	}
	return schedule.Filter{
		Types:    types,
		Labels:   labels,
		Statuses: statuses,
		Window:   &window,
	}, window
}

// taskBounds returns [min start, max end] over the tasks, or today for an
// empty set.
func taskBounds(tasks []model.Task) schedule.Window {
	if len(tasks) == 0 {
		today := schedule.Day(time.Now())
		return schedule.Window{Start: today, End: today}
	}
	start := schedule.Day(tasks[0].StartDate)
	end := schedule.Day(tasks[0].EndDate)
	for _, t := range tasks[1:] {
		if d := schedule.Day(t.StartDate); d.Before(start) {
			start = d
		}
		if d := schedule.Day(t.EndDate); d.After(end) {
			end = d
		}
	}
	return schedule.Window{Start: start, End: end}
}

func (s *PlannerService) join(snap *snapshot, tasks []model.Task) []TaskItem {
	items := make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		res, ok := snap.catalog.Lookup(t.ResourceID)
		if !ok {
			continue
		}
		items = append(items, TaskItem{
			Task:          t,
			ResourceName:  res.Name,
			ResourceType:  res.Type,
			ResourceLabel: res.Label(),
			ResourceColor: res.Color,
		})
	}
	return items
}

// Timeline returns the filtered tasks joined with resource metadata and the
// ordered label axis restricted to labels that actually appear.
func (s *PlannerService) Timeline(ctx context.Context, q Query) (*TimelineView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filter, window := s.resolve(snap, q)
	items := s.join(snap, filter.Apply(snap.tasks, snap.catalog))

	present := make(map[string]struct{}, len(items))
	for _, it := range items {
		present[it.ResourceLabel] = struct{}{}
	}
	var order []string
	for _, label := range snap.catalog.OrderedLabels() {
		if _, ok := present[label]; ok {
			order = append(order, label)
		}
	}
	return &TimelineView{Window: window, Order: order, Tasks: items}, nil
}

// Calendar returns one occupancy record per (task, day) within the window.
func (s *PlannerService) Calendar(ctx context.Context, q Query) ([]schedule.Occupancy, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filter, window := s.resolve(snap, q)
	filtered := filter.Apply(snap.tasks, snap.catalog)
	return schedule.Expand(filtered, snap.catalog, &window), nil
}

// Utilization returns per-resource busy days and percentages for the window.
func (s *PlannerService) Utilization(ctx context.Context, q Query) ([]schedule.UtilizationRow, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filter, window := s.resolve(snap, q)
	filtered := filter.Apply(snap.tasks, snap.catalog)
	occupancy := schedule.Expand(filtered, snap.catalog, &window)
	return schedule.Utilization(occupancy, window), nil
}

// Watchlist returns the resources at or above the utilization threshold.
func (s *PlannerService) Watchlist(ctx context.Context, q Query) ([]schedule.UtilizationRow, error) {
	rows, err := s.Utilization(ctx, q)
	if err != nil {
		return nil, err
	}
	return schedule.Watchlist(rows, schedule.WatchlistThreshold), nil
}

// Dashboard computes the KPI summary for the window. Empty inputs produce
// an empty summary, never an error.
func (s *PlannerService) Dashboard(ctx context.Context, q Query) (*DashboardSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filter, window := s.resolve(snap, q)
	filtered := filter.Apply(snap.tasks, snap.catalog)
	occupancy := schedule.Expand(filtered, snap.catalog, &window)
	rows := schedule.Utilization(occupancy, window)
	items := s.join(snap, filtered)

	summary := &DashboardSummary{
		Window:         window,
		TotalTasks:     len(items),
		StatusMix:      make(map[model.TaskStatus]int),
		WorkloadByType: make(map[model.ResourceType]int),
		Utilization:    rows,
		Watchlist:      schedule.Watchlist(rows, schedule.WatchlistThreshold),
	}
	for _, it := range items {
		summary.StatusMix[it.Status]++
		if it.Status.IsLeave() {
			summary.Leave = append(summary.Leave, it)
		}
	}

	// Distinct busy days per resource, per type and per ISO week.
	resourceDays := make(map[uint]map[time.Time]struct{})
	resourceNames := make(map[uint]string)
	typeDays := make(map[model.ResourceType]map[time.Time]struct{})
	weekDays := make(map[string]map[time.Time]struct{})
	weekMeta := make(map[string]WeekLoad)
	for _, rec := range occupancy {
		day := schedule.Day(rec.Date)
		if resourceDays[rec.ResourceID] == nil {
			resourceDays[rec.ResourceID] = make(map[time.Time]struct{})
			resourceNames[rec.ResourceID] = rec.ResourceName
		}
		resourceDays[rec.ResourceID][day] = struct{}{}

		if typeDays[rec.ResourceType] == nil {
			typeDays[rec.ResourceType] = make(map[time.Time]struct{})
		}
		typeDays[rec.ResourceType][day] = struct{}{}

		week := weekStart(day)
		key := week.Format("2006-01-02") + "|" + rec.ResourceName
		if weekDays[key] == nil {
			weekDays[key] = make(map[time.Time]struct{})
			weekMeta[key] = WeekLoad{WeekStart: week, ResourceName: rec.ResourceName}
		}
		weekDays[key][day] = struct{}{}
	}

	summary.ActiveResources = len(resourceDays)
	for t, days := range typeDays {
		summary.WorkloadByType[t] = len(days)
	}
	for key, days := range weekDays {
		load := weekMeta[key]
		load.BusyDays = len(days)
		summary.WeeklyLoad = append(summary.WeeklyLoad, load)
	}
	sort.Slice(summary.WeeklyLoad, func(i, j int) bool {
		a, b := summary.WeeklyLoad[i], summary.WeeklyLoad[j]
		if !a.WeekStart.Equal(b.WeekStart) {
			return a.WeekStart.Before(b.WeekStart)
		}
		return a.ResourceName < b.ResourceName
	})

	for id, days := range resourceDays {
		summary.TopBusy = append(summary.TopBusy, BusyResource{
			ResourceName: resourceNames[id],
			BusyDays:     len(days),
		})
	}
	sort.Slice(summary.TopBusy, func(i, j int) bool {
		a, b := summary.TopBusy[i], summary.TopBusy[j]
		if a.BusyDays != b.BusyDays {
			return a.BusyDays > b.BusyDays
		}
		return a.ResourceName < b.ResourceName
	})
	if len(summary.TopBusy) > 0 {
		top := summary.TopBusy[0]
		summary.Busiest = &top
	}

	if len(rows) > 0 {
		var total float64
		for _, row := range rows {
			total += row.Utilization
		}
		summary.AvgUtilization = math.Round(total/float64(len(rows))*10) / 10
	}

	upcoming := make([]TaskItem, len(items))
	copy(upcoming, items)
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	if len(upcoming) > 10 {
		upcoming = upcoming[:10]
	}
	summary.Upcoming = upcoming

	return summary, nil
}

// weekStart returns the Monday of the week containing day.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

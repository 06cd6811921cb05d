package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resource-planner/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCatalog() *Catalog {
	return NewCatalog([]model.Resource{
		{ID: 1, Name: "Aurora Explorer", Type: model.TypeVessel, Active: true},
		{ID: 2, Name: "Alex Morgan", Type: model.TypePerson, Active: true},
	})
}

func allowAll(c *Catalog) Filter {
	return Filter{
		Types:    model.ResourceTypes,
		Labels:   c.Labels(),
		Statuses: model.TaskStatuses,
	}
}

func TestFilterInclusiveOverlap(t *testing.T) {
	catalog := testCatalog()
	task := model.Task{ID: 10, ResourceID: 1, Title: "Cable lay", Status: model.StatusPlanned,
		StartDate: date(2025, 1, 10), EndDate: date(2025, 1, 20)}

	f := allowAll(catalog)
	window := NewWindow(date(2025, 1, 15), date(2025, 1, 25))
	f.Window = &window

	got := f.Apply([]model.Task{task}, catalog)
	assert.Len(t, got, 1)

	// Touching the window boundary still counts as overlap.
	edge := NewWindow(date(2025, 1, 20), date(2025, 1, 31))
	f.Window = &edge
	assert.Len(t, f.Apply([]model.Task{task}, catalog), 1)

	outside := NewWindow(date(2025, 1, 21), date(2025, 1, 31))
	f.Window = &outside
	assert.Empty(t, f.Apply([]model.Task{task}, catalog))
}

func TestFilterNoWindowSkipsDateCheck(t *testing.T) {
	catalog := testCatalog()
	task := model.Task{ResourceID: 1, Status: model.StatusPlanned,
		StartDate: date(2030, 6, 1), EndDate: date(2030, 6, 2)}
	got := allowAll(catalog).Apply([]model.Task{task}, catalog)
	assert.Len(t, got, 1)
}

func TestFilterEmptyAllowSetMatchesNothing(t *testing.T) {
	catalog := testCatalog()
	task := model.Task{ResourceID: 1, Status: model.StatusPlanned,
		StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 2)}

	f := allowAll(catalog)
	f.Statuses = nil
	assert.Empty(t, f.Apply([]model.Task{task}, catalog))

	f = allowAll(catalog)
	f.Types = []model.ResourceType{}
	assert.Empty(t, f.Apply([]model.Task{task}, catalog))

	f = allowAll(catalog)
	f.Labels = []string{}
	assert.Empty(t, f.Apply([]model.Task{task}, catalog))
}

func TestFilterCategoricalDimensions(t *testing.T) {
	catalog := testCatalog()
	tasks := []model.Task{
		{ID: 1, ResourceID: 1, Status: model.StatusPlanned, StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 5)},
		{ID: 2, ResourceID: 2, Status: model.StatusHoliday, StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 5)},
	}

	f := allowAll(catalog)
	f.Types = []model.ResourceType{model.TypePerson}
	got := f.Apply(tasks, catalog)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	f = allowAll(catalog)
	f.Labels = []string{"Vessel – Aurora Explorer"}
	got = f.Apply(tasks, catalog)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	f = allowAll(catalog)
	f.Statuses = []model.TaskStatus{model.StatusHoliday}
	got = f.Apply(tasks, catalog)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestFilterDropsDanglingReference(t *testing.T) {
	catalog := testCatalog()
	task := model.Task{ResourceID: 99, Status: model.StatusPlanned,
		StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 5)}
	assert.Empty(t, allowAll(catalog).Apply([]model.Task{task}, catalog))
}

func TestFilterEmptyInput(t *testing.T) {
	catalog := testCatalog()
	assert.Empty(t, allowAll(catalog).Apply(nil, catalog))
}

package service

import (
	"context"
	"time"

	"resource-planner/internal/model"
	"resource-planner/internal/repository"
)

type demoResource struct {
	name  string
	rtype model.ResourceType
	color string
}

type demoTask struct {
	resource    string
	title       string
	description string
	start       string
	end         string
	status      model.TaskStatus
}

var demoResources = []demoResource{
	{"Aurora Explorer", model.TypeVessel, "#0B1E41"},
	{"Nordic Surveyor", model.TypeVessel, "#64A6D9"},
	{"Project Polaris", model.TypeProject, "#8BC0B5"},
	{"Project Horizon", model.TypeProject, "#C46565"},
	{"Alex Morgan", model.TypePerson, "#0B1E41"},
	{"Sam Lee", model.TypePerson, "#64A6D9"},
	{"Priya Nair", model.TypePerson, "#8BC0B5"},
}

var demoTasks = []demoTask{
	{"Aurora Explorer", "Cable lay - North Sea", "Laying subsea cables", "2025-01-04", "2025-01-15", model.StatusInProgress},
	{"Nordic Surveyor", "ROV inspection", "Inspection and survey", "2025-01-10", "2025-01-18", model.StatusPlanned},
	{"Project Polaris", "Mobilisation", "Prep and mobilisation", "2025-01-05", "2025-01-08", model.StatusPlanned},
	{"Project Polaris", "Execution phase", "Main work package", "2025-01-20", "2025-02-05", model.StatusInProgress},
	{"Project Horizon", "Design freeze", "Final design and sign-off", "2025-01-12", "2025-01-17", model.StatusOnHold},
	{"Alex Morgan", "Holiday", "Winter break", "2025-01-24", "2025-01-31", model.StatusHoliday},
	{"Alex Morgan", "Deck lead", "Oversee deck operations", "2025-02-10", "2025-02-22", model.StatusPlanned},
	{"Sam Lee", "Time off", "Personal leave", "2025-02-03", "2025-02-07", model.StatusTimeOff},
	{"Sam Lee", "Project Polaris support", "Site engineering", "2025-01-14", "2025-01-22", model.StatusInProgress},
	{"Priya Nair", "HSE training", "Annual certification", "2025-01-16", "2025-01-18", model.StatusDone},
	{"Priya Nair", "Project Horizon coordination", "PMO support", "2025-02-01", "2025-02-12", model.StatusPlanned},
}

// SeedService loads the demo vessels, projects, people and tasks.
type SeedService struct {
	resourceRepo *repository.ResourceRepository
	taskRepo     *repository.TaskRepository
}

func NewSeedService(resourceRepo *repository.ResourceRepository, taskRepo *repository.TaskRepository) *SeedService {
	return &SeedService{resourceRepo: resourceRepo, taskRepo: taskRepo}
}

// SeedDemo inserts the demo data set. Safe to run repeatedly: resources are
// keyed on (type, name) and tasks on (resource, title, start, end).
func (s *SeedService) SeedDemo(ctx context.Context) error {
	nameToID := make(map[string]uint, len(demoResources))
	for _, dr := range demoResources {
		resource, err := s.resourceRepo.GetOrCreate(ctx, dr.rtype, dr.name, dr.color)
		if err != nil {
			return err
		}
		nameToID[dr.name] = resource.ID
	}

	for _, dt := range demoTasks {
		resourceID, ok := nameToID[dt.resource]
		if !ok {
			continue
		}
		start, err := time.Parse("2006-01-02", dt.start)
		if err != nil {
			return err
		}
		end, err := time.Parse("2006-01-02", dt.end)
		if err != nil {
			return err
		}
		exists, err := s.taskRepo.Exists(ctx, resourceID, dt.title, start, end)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		task := model.Task{
			ResourceID:  resourceID,
			Title:       dt.title,
			Description: dt.description,
			StartDate:   start,
			EndDate:     end,
			Status:      dt.status,
		}
		if err := s.taskRepo.Create(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"resource-planner/internal/model"
)

// ResourceRepository handles CRUD for resources.
type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	if err := r.db.WithContext(ctx).Save(resource).Error; err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns resources ordered by type then name, which is the order the
// catalog and display ordering rely on. With activeOnly set, deactivated
// resources are excluded.
func (r *ResourceRepository) List(ctx context.Context, activeOnly bool) ([]model.Resource, error) {
	var resources []model.Resource
	q := r.db.WithContext(ctx).Order("type ASC, name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// GetOrCreate finds a resource by (type, name) or creates it. Existing
// resources are reactivated and recolored, which keeps seeding idempotent.
func (r *ResourceRepository) GetOrCreate(ctx context.Context, rtype model.ResourceType, name, color string) (*model.Resource, error) {
	var resource model.Resource
	db := r.db.WithContext(ctx)
	err := db.Where("type = ? AND name = ?", rtype, name).First(&resource).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{"active": true, "color": color}
		if err := db.Model(&resource).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("reactivate resource: %w", err)
		}
		return &resource, nil
	case err == gorm.ErrRecordNotFound:
		resource = model.Resource{Name: name, Type: rtype, Color: color, Active: true}
		if err := db.Create(&resource).Error; err != nil {
			return nil, fmt.Errorf("create resource: %w", err)
		}
		return &resource, nil
	default:
		return nil, fmt.Errorf("find resource: %w", err)
	}
}

// Delete removes a resource and cascades to every task referencing it.
func (r *ResourceRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Resource{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

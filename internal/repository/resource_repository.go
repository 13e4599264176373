package repository

import (
	"github.com/mkhadiri/mentorhub/internal/model"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(resource *model.Resource) error
	FindByID(id uint) (*model.Resource, error)
	FindAll() ([]model.Resource, error)
	Update(resource *model.Resource) error
	Delete(id uint) error
	IncrementDownloadCount(id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(resource *model.Resource) error {
	return r.db.Create(resource).Error
}

func (r *resourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) FindAll() ([]model.Resource, error) {
	var resources []model.Resource
	if err := r.db.Order("created_at desc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Update(resource *model.Resource) error {
	return r.db.Save(resource).Error
}

func (r *resourceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Resource{}, id).Error
}

// IncrementDownloadCount bumps the counter with a single UPDATE so
// concurrent downloads never lose an increment.
func (r *resourceRepository) IncrementDownloadCount(id uint) error {
	return r.db.Model(&model.Resource{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}

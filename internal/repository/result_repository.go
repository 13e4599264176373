package repository

import (
	"github.com/mkhadiri/mentorhub/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.UserTestResult) error
	FindByID(id uint) (*model.UserTestResult, error)
	FindAll() ([]model.UserTestResult, error)
	FindByUser(userID uint) ([]model.UserTestResult, error)
	Update(result *model.UserTestResult) error
	Delete(id uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.UserTestResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.UserTestResult, error) {
	var result model.UserTestResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAll() ([]model.UserTestResult, error) {
	var results []model.UserTestResult
	if err := r.db.Order("completed_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindByUser(userID uint) ([]model.UserTestResult, error) {
	var results []model.UserTestResult
	if err := r.db.Where("user_id = ?", userID).Order("completed_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) Update(result *model.UserTestResult) error {
	return r.db.Save(result).Error
}

func (r *resultRepository) Delete(id uint) error {
	return r.db.Delete(&model.UserTestResult{}, id).Error
}

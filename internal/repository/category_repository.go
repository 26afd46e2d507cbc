package repository

import (
	"courseforge_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// FindByIDAndInstructor is the direct ownership check for categories.
func (r *CategoryRepository) FindByIDAndInstructor(id, instructorID uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) ListByInstructor(instructorID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}

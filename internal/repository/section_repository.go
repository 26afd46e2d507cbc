package repository

import (
	"courseforge_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) ListByModule(moduleID uint) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("module_id = ?", moduleID).
		Order("sort_order ASC").
		Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) CountByModule(moduleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Section{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	return count, err
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Section{}, id).Error
}

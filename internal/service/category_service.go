package service

import (
	"errors"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) List(instructorID uint) ([]model.Category, error) {
	return s.CategoryRepo.ListByInstructor(instructorID)
}

func (s *CategoryService) Get(id, instructorID uint) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByIDAndInstructor(id, instructorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return category, err
}

// Create relies on the composite unique index for name uniqueness; the
// driver error is translated, never pre-validated.
func (s *CategoryService) Create(category *model.Category) error {
	if err := s.CategoryRepo.Create(category); err != nil {
		if util.IsDuplicateKey(err) {
			return util.ErrCategoryExists
		}
		return err
	}
	return nil
}

type CategoryUpdate struct {
	Name        *string
	Description *string
}

func (s *CategoryService) Update(id, instructorID uint, update CategoryUpdate) (*model.Category, error) {
	category, err := s.Get(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}

	if err := s.CategoryRepo.Update(category); err != nil {
		if util.IsDuplicateKey(err) {
			return nil, util.ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id, instructorID uint) error {
	category, err := s.Get(id, instructorID)
	if err != nil {
		return err
	}
	return s.CategoryRepo.Delete(category.ID)
}

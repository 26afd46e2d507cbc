package service

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"

	"gorm.io/gorm"
)

// ModuleService covers modules and their content sections.
type ModuleService struct {
	ModuleRepo  *repository.ModuleRepository
	SectionRepo *repository.SectionRepository
	Owner       *OwnershipService
	DB          *gorm.DB
}

func NewModuleService(
	moduleRepo *repository.ModuleRepository,
	sectionRepo *repository.SectionRepository,
	owner *OwnershipService,
	db *gorm.DB,
) *ModuleService {
	return &ModuleService{
		ModuleRepo:  moduleRepo,
		SectionRepo: sectionRepo,
		Owner:       owner,
		DB:          db,
	}
}

func (s *ModuleService) ListForCourse(courseID, instructorID uint) ([]model.CourseModule, error) {
	if _, err := s.Owner.ResolveCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	return s.ModuleRepo.ListByCourse(courseID)
}

// Create appends a module to the course. When the caller supplies no order
// it defaults to the current sibling count; duplicates are tolerated.
func (s *ModuleService) Create(courseID, instructorID uint, module *model.CourseModule, order *int) error {
	if _, err := s.Owner.ResolveCourse(courseID, instructorID); err != nil {
		return err
	}

	module.CourseID = courseID
	if order != nil {
		module.Order = *order
	} else {
		count, err := s.ModuleRepo.CountByCourse(courseID)
		if err != nil {
			return err
		}
		module.Order = int(count)
	}

	return s.ModuleRepo.Create(module)
}

func (s *ModuleService) Get(id, instructorID uint) (*model.CourseModule, error) {
	module, err := s.Owner.ResolveModule(id, instructorID)
	if err != nil {
		return nil, err
	}
	sections, err := s.SectionRepo.ListByModule(module.ID)
	if err != nil {
		return nil, err
	}
	module.Sections = sections
	return module, nil
}

type ModuleUpdate struct {
	Title       *string
	Description *string
	Order       *int
}

func (s *ModuleService) Update(id, instructorID uint, update ModuleUpdate) (*model.CourseModule, error) {
	module, err := s.Owner.ResolveModule(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		module.Title = *update.Title
	}
	if update.Description != nil {
		module.Description = *update.Description
	}
	if update.Order != nil {
		module.Order = *update.Order
	}

	if err := s.ModuleRepo.Update(module); err != nil {
		return nil, err
	}
	return module, nil
}

// Delete removes the module and everything under it: sections, the module
// quiz and its questions/answers.
func (s *ModuleService) Delete(id, instructorID uint) error {
	module, err := s.Owner.ResolveModule(id, instructorID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).
			Where("module_id = ?", module.ID).
			Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		for _, quizID := range quizIDs {
			if err := deleteQuizCascade(tx, quizID); err != nil {
				return err
			}
		}

		if err := tx.Where("module_id = ?", module.ID).Delete(&model.Section{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CourseModule{}, module.ID).Error
	})
}

func (s *ModuleService) ListSections(moduleID, instructorID uint) ([]model.Section, error) {
	if _, err := s.Owner.ResolveModule(moduleID, instructorID); err != nil {
		return nil, err
	}
	return s.SectionRepo.ListByModule(moduleID)
}

func (s *ModuleService) CreateSection(moduleID, instructorID uint, section *model.Section, order *int) error {
	if _, err := s.Owner.ResolveModule(moduleID, instructorID); err != nil {
		return err
	}

	section.ModuleID = moduleID
	if order != nil {
		section.Order = *order
	} else {
		count, err := s.SectionRepo.CountByModule(moduleID)
		if err != nil {
			return err
		}
		section.Order = int(count)
	}

	return s.SectionRepo.Create(section)
}

func (s *ModuleService) GetSection(id, instructorID uint) (*model.Section, error) {
	return s.Owner.ResolveSection(id, instructorID)
}

type SectionUpdate struct {
	Title       *string
	Description *string
	Order       *int
	FileURL     *string
	FileName    *string
	FileType    *string
	YoutubeURL  *string
}

func (s *ModuleService) UpdateSection(id, instructorID uint, update SectionUpdate) (*model.Section, error) {
	section, err := s.Owner.ResolveSection(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		section.Title = *update.Title
	}
	if update.Description != nil {
		section.Description = *update.Description
	}
	if update.Order != nil {
		section.Order = *update.Order
	}
	if update.FileURL != nil {
		section.FileURL = *update.FileURL
	}
	if update.FileName != nil {
		section.FileName = *update.FileName
	}
	if update.FileType != nil {
		section.FileType = *update.FileType
	}
	if update.YoutubeURL != nil {
		section.YoutubeURL = *update.YoutubeURL
	}

	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *ModuleService) DeleteSection(id, instructorID uint) error {
	section, err := s.Owner.ResolveSection(id, instructorID)
	if err != nil {
		return err
	}
	return s.SectionRepo.Delete(section.ID)
}

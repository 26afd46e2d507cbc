package service

import (
	"errors"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	CategoryRepo *repository.CategoryRepository
	ModuleRepo   *repository.ModuleRepository
	Owner        *OwnershipService
	DB           *gorm.DB
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	categoryRepo *repository.CategoryRepository,
	moduleRepo *repository.ModuleRepository,
	owner *OwnershipService,
	db *gorm.DB,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		CategoryRepo: categoryRepo,
		ModuleRepo:   moduleRepo,
		Owner:        owner,
		DB:           db,
	}
}

func (s *CourseService) ListForInstructor(instructorID uint) ([]model.Course, error) {
	return s.CourseRepo.ListByInstructor(instructorID)
}

// GetTree returns the course with its full authoring tree populated.
func (s *CourseService) GetTree(id, instructorID uint) (*model.Course, error) {
	if _, err := s.Owner.ResolveCourse(id, instructorID); err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindTreeByIDAndInstructor(id, instructorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return course, err
}

// Create checks the referenced category belongs to the caller before
// inserting; a foreign category reads as not found, not forbidden.
func (s *CourseService) Create(course *model.Course) error {
	if _, err := s.CategoryRepo.FindByIDAndInstructor(course.CategoryID, course.InstructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}
	if course.Status == "" {
		course.Status = model.StatusDraft
	}
	return s.CourseRepo.Create(course)
}

// CourseUpdate carries the PUT body: nil fields are left untouched
// (partial field replacement).
type CourseUpdate struct {
	Title       *string
	Description *string
	CategoryID  *uint
	Price       *float64
	Thumbnail   *string
	Status      *model.CourseStatus
}

func (s *CourseService) Update(id, instructorID uint, update CourseUpdate) (*model.Course, error) {
	course, err := s.Owner.ResolveCourse(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByIDAndInstructor(*update.CategoryID, instructorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNotFound
			}
			return nil, err
		}
		course.CategoryID = *update.CategoryID
	}
	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Price != nil {
		course.Price = *update.Price
	}
	if update.Thumbnail != nil {
		course.Thumbnail = *update.Thumbnail
	}
	if update.Status != nil {
		course.Status = *update.Status
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course and its whole subtree (modules, sections,
// quizzes, questions, answers, final exam) in one transaction.
func (s *CourseService) Delete(id, instructorID uint) error {
	course, err := s.Owner.ResolveCourse(id, instructorID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uint
		if err := tx.Model(&model.CourseModule{}).
			Where("course_id = ?", course.ID).
			Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		var quizIDs []uint
		if len(moduleIDs) > 0 {
			if err := tx.Model(&model.Quiz{}).
				Where("module_id IN ?", moduleIDs).
				Pluck("id", &quizIDs).Error; err != nil {
				return err
			}
		}
		var examIDs []uint
		if err := tx.Model(&model.Quiz{}).
			Where("course_id = ?", course.ID).
			Pluck("id", &examIDs).Error; err != nil {
			return err
		}
		quizIDs = append(quizIDs, examIDs...)

		for _, quizID := range quizIDs {
			if err := deleteQuizCascade(tx, quizID); err != nil {
				return err
			}
		}

		if len(moduleIDs) > 0 {
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&model.Section{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.CourseModule{}, moduleIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Course{}, course.ID).Error
	})
}

// deleteQuizCascade removes a quiz with its questions and their answers.
// Shared by quiz deletion, module deletion and course deletion.
func deleteQuizCascade(tx *gorm.DB, quizID uint) error {
	subQuery := tx.Model(&model.Question{}).Select("id").Where("quiz_id = ?", quizID)
	if err := tx.Where("question_id IN (?)", subQuery).Delete(&model.Answer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Quiz{}, quizID).Error
}

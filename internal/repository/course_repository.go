package repository

import (
	"courseforge_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindByIDAndInstructor is the root ownership check every nested mutation
// lands on.
func (r *CourseRepository) FindByIDAndInstructor(id, instructorID uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).First(&course).Error
	return &course, err
}

// FindTreeByIDAndInstructor loads the full authoring tree: category,
// ordered modules with their sections and quiz (answers included), plus
// the final exam with its questions.
func (r *CourseRepository) FindTreeByIDAndInstructor(id, instructorID uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).
		Preload("Category").
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Modules.Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Modules.Quiz").
		Preload("Modules.Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Modules.Quiz.Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("FinalExam", "is_final_exam = ?", true).
		Preload("FinalExam.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("FinalExam.Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) ListByInstructor(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("instructor_id = ?", instructorID).
		Preload("Category").
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

// ListPublished backs the public catalog: newest first, optional category
// filter, limit/skip pagination.
func (r *CourseRepository) ListPublished(categoryID uint, limit, skip int) ([]model.Course, int64, error) {
	query := r.DB.Model(&model.Course{}).Where("status = ?", model.StatusPublished)
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.
		Preload("Category").
		Preload("Instructor").
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) CountByInstructor(instructorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).
		Where("instructor_id = ?", instructorID).
		Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountByInstructorAndStatus(instructorID uint, status model.CourseStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).
		Where("instructor_id = ? AND status = ?", instructorID, status).
		Count(&count).Error
	return count, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

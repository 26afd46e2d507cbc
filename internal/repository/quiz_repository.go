package repository

import (
	"courseforge_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

// FindByModule returns the module quiz if one exists.
func (r *QuizRepository) FindByModule(moduleID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("module_id = ?", moduleID).First(&quiz).Error
	return &quiz, err
}

// FindFinalExam returns the course-level final exam if one exists.
func (r *QuizRepository) FindFinalExam(courseID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("course_id = ? AND is_final_exam = ?", courseID, true).First(&quiz).Error
	return &quiz, err
}

// FindWithQuestions loads a quiz with its ordered questions and answers.
func (r *QuizRepository) FindWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

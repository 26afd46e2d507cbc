package repository

import (
	"courseforge_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}

func (r *AnswerRepository) ListByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("question_id = ?", questionID).
		Order("sort_order ASC").
		Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) CountByQuestion(questionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Answer{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

func (r *AnswerRepository) Update(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}

func (r *AnswerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Answer{}, id).Error
}

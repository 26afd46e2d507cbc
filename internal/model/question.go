package model

type QuestionType string

const (
	QuestionQCM             QuestionType = "qcm"
	QuestionTrueFalse       QuestionType = "true_false"
	QuestionMultipleCorrect QuestionType = "multiple_correct"
)

func ValidQuestionType(s string) bool {
	switch QuestionType(s) {
	case QuestionQCM, QuestionTrueFalse, QuestionMultipleCorrect:
		return true
	}
	return false
}

// swagger:model Question
type Question struct {
	BaseModel
	Question string       `gorm:"type:text;not null" json:"question"`
	Type     QuestionType `gorm:"size:20;not null" json:"type"`
	QuizID   uint         `gorm:"index;not null" json:"quizId"`
	Order    int          `gorm:"column:sort_order;default:0" json:"order"`
	Points   int          `gorm:"default:1" json:"points"`
	Answers  []Answer     `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

package model

// swagger:model Answer
type Answer struct {
	BaseModel
	Answer     string `gorm:"type:text;not null" json:"answer"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Order      int    `gorm:"column:sort_order;default:0" json:"order"`
}

func (Answer) TableName() string {
	return "answers"
}

package model

// Quiz hangs off exactly one parent: ModuleID for a module quiz or
// CourseID for a course final exam, never both.
//
// TotalPoints is a stored aggregate that the authoring flow never
// recomputes when questions change; see DESIGN.md before "fixing" it.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	ModuleID     *uint      `gorm:"index" json:"moduleId,omitempty"`
	CourseID     *uint      `gorm:"index" json:"courseId,omitempty"`
	IsFinalExam  bool       `gorm:"default:false" json:"isFinalExam"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	TotalPoints  int        `gorm:"default:0" json:"totalPoints"`
	PassingScore int        `gorm:"default:60" json:"passingScore"`
	TimeLimit    *int       `json:"timeLimit,omitempty"` // minutes
}

func (Quiz) TableName() string {
	return "quizzes"
}

package model

type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusPublished CourseStatus = "published"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	CategoryID   uint           `gorm:"index;not null" json:"categoryId"`
	Category     *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	InstructorID uint           `gorm:"index;not null" json:"instructorId"`
	Instructor   *User          `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Price        float64        `gorm:"default:0" json:"price"`
	Thumbnail    string         `gorm:"size:500" json:"thumbnail,omitempty"`
	Status       CourseStatus   `gorm:"size:20;default:'draft'" json:"status"`
	Modules      []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
	// FinalExam is the quiz whose CourseID points here (isFinalExam=true).
	FinalExam *Quiz `gorm:"foreignKey:CourseID" json:"finalExam,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

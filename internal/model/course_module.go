package model

// CourseModule is a chapter of a course. Order values are caller supplied
// and sort-only: duplicates and gaps are tolerated, never renumbered.
// swagger:model CourseModule
type CourseModule struct {
	BaseModel
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CourseID    uint      `gorm:"index;not null" json:"courseId"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Sections    []Section `gorm:"foreignKey:ModuleID" json:"sections,omitempty"`
	Quiz        *Quiz     `gorm:"foreignKey:ModuleID" json:"quiz,omitempty"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

package model

// Category name is unique per instructor, enforced only by the composite
// index; the duplicate-key error from the driver surfaces as a 400.
// swagger:model Category
type Category struct {
	BaseModel
	Name         string `gorm:"size:255;not null;uniqueIndex:idx_categories_instructor_name" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	InstructorID uint   `gorm:"not null;uniqueIndex:idx_categories_instructor_name" json:"instructorId"`
}

func (Category) TableName() string {
	return "categories"
}

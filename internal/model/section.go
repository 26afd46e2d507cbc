package model

type SectionType string

const (
	SectionFile    SectionType = "file"
	SectionYoutube SectionType = "youtube"
)

func ValidSectionType(s string) bool {
	switch SectionType(s) {
	case SectionFile, SectionYoutube:
		return true
	}
	return false
}

// swagger:model Section
type Section struct {
	BaseModel
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	ModuleID    uint        `gorm:"index;not null" json:"moduleId"`
	Type        SectionType `gorm:"size:20;not null" json:"type"`
	Order       int         `gorm:"column:sort_order;default:0" json:"order"`
	// file sections
	FileURL  string `gorm:"size:500" json:"fileUrl,omitempty"`
	FileName string `gorm:"size:255" json:"fileName,omitempty"`
	FileType string `gorm:"size:20" json:"fileType,omitempty"` // pdf | word | ppt
	// youtube sections
	YoutubeURL string `gorm:"size:500" json:"youtubeUrl,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}

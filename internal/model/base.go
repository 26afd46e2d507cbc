package model

import "time"

// BaseModel deliberately omits gorm.DeletedAt: every delete in this
// application is physical, cascades included.
// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

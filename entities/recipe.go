package entities

import (
	"time"
)

type Recipe struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	CreatedAt    time.Time `gorm:"type:timestamp;autoCreateTime;index" json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

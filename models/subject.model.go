package models

import "gorm.io/gorm"

type Subject struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"default:''"`
	Category    string `json:"category" gorm:"default:''"`
	Thumbnail   string `json:"thumbnail" gorm:"default:''"`
}

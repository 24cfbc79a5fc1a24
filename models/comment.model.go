package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"index;not null"`
	ChapterID uint    `json:"chapter_id" gorm:"index;not null"`
	Content   string  `json:"content" gorm:"not null"`
	User      User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Chapter   Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

// Bookmark existence is the truth value: present = bookmarked.
type Bookmark struct {
	gorm.Model
	UserID     uint     `json:"user_id" gorm:"not null;uniqueIndex:idx_bookmark_user_material"`
	MaterialID uint     `json:"material_id" gorm:"not null;uniqueIndex:idx_bookmark_user_material"`
	User       User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Material   Material `json:"-" gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE"`
}

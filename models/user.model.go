package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Avatar   string `json:"avatar" gorm:"default:''"`
	Role     string `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	XP       int    `json:"xp" gorm:"default:0"`        // only ever incremented, never decremented
}

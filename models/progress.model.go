package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord is the completion ledger: at most one row per
// (user, material) pair, enforced by the composite unique index.
type ProgressRecord struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_material"`
	MaterialID  uint      `json:"material_id" gorm:"not null;uniqueIndex:idx_progress_user_material"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
	CompletedAt time.Time `json:"completed_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Material    Material  `json:"-" gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

// Grades chapters can belong to.
var ValidGrades = []int{10, 11, 12}

func IsValidGrade(grade int) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}

type Chapter struct {
	gorm.Model
	SubjectID uint    `json:"subject_id" gorm:"index;not null"`
	Title     string  `json:"title" gorm:"not null"`
	Grade     int     `json:"grade" gorm:"not null"` // 10, 11 or 12
	Order     int     `json:"order" gorm:"column:display_order;default:0"`
	Subject   Subject `json:"-" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}

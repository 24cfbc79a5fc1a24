package models

import "gorm.io/gorm"

const (
	MaterialDocument = "document"
	MaterialSlide    = "slide"
	MaterialVideo    = "video"
)

func IsValidMaterialType(t string) bool {
	return t == MaterialDocument || t == MaterialSlide || t == MaterialVideo
}

type Material struct {
	gorm.Model
	ChapterID      uint    `json:"chapter_id" gorm:"index;not null"`
	Title          string  `json:"title" gorm:"not null"`
	Type           string  `json:"type" gorm:"not null"` // document, slide, video
	ContentURL     string  `json:"content_url" gorm:"not null"`
	IsDownloadable bool    `json:"is_downloadable"`
	Chapter        Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}

// BeforeSave keeps IsDownloadable derived from Type: videos are streamed,
// everything else can be saved offline. The flag is never accepted from input.
func (m *Material) BeforeSave(*gorm.DB) error {
	m.IsDownloadable = m.Type != MaterialVideo
	return nil
}

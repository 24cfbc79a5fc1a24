package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMaterialTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Subject{}, &Chapter{}, &Material{}))
	return db
}

func TestMaterialDownloadableDerivedFromType(t *testing.T) {
	db := newMaterialTestDB(t)

	subject := Subject{Title: "Math"}
	require.NoError(t, db.Create(&subject).Error)
	chapter := Chapter{SubjectID: subject.ID, Title: "Algebra", Grade: 10}
	require.NoError(t, db.Create(&chapter).Error)

	tests := []struct {
		materialType string
		want         bool
	}{
		{MaterialDocument, true},
		{MaterialSlide, true},
		{MaterialVideo, false},
	}
	for _, tt := range tests {
		t.Run(tt.materialType, func(t *testing.T) {
			material := Material{
				ChapterID:  chapter.ID,
				Title:      "sample " + tt.materialType,
				Type:       tt.materialType,
				ContentURL: "uploads/materials/sample.bin",
				// Deliberately wrong on input; the hook must win
				IsDownloadable: !tt.want,
			}
			require.NoError(t, db.Create(&material).Error)

			var stored Material
			require.NoError(t, db.First(&stored, material.ID).Error)
			assert.Equal(t, tt.want, stored.IsDownloadable)
		})
	}
}

func TestMaterialDownloadableRecomputedOnTypeChange(t *testing.T) {
	db := newMaterialTestDB(t)

	subject := Subject{Title: "Math"}
	require.NoError(t, db.Create(&subject).Error)
	chapter := Chapter{SubjectID: subject.ID, Title: "Algebra", Grade: 10}
	require.NoError(t, db.Create(&chapter).Error)

	material := Material{
		ChapterID:  chapter.ID,
		Title:      "lecture",
		Type:       MaterialVideo,
		ContentURL: "https://videos.example.com/lecture.mp4",
	}
	require.NoError(t, db.Create(&material).Error)
	require.False(t, material.IsDownloadable)

	material.Type = MaterialDocument
	require.NoError(t, db.Save(&material).Error)

	var stored Material
	require.NoError(t, db.First(&stored, material.ID).Error)
	assert.True(t, stored.IsDownloadable)

	stored.Type = MaterialVideo
	require.NoError(t, db.Save(&stored).Error)

	require.NoError(t, db.First(&stored, material.ID).Error)
	assert.False(t, stored.IsDownloadable)
}

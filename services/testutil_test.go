package services

import (
	"fmt"
	"testing"

	"elearn/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store per test. A single connection
// keeps the in-memory database alive and serializes access.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Material{},
		&models.ProgressRecord{},
		&models.Bookmark{},
		&models.Comment{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, xp int) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@test.local", name),
		Password: "secret",
		XP:       xp,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSubject(t *testing.T, db *gorm.DB, title, category string) models.Subject {
	t.Helper()
	subject := models.Subject{Title: title, Category: category}
	require.NoError(t, db.Create(&subject).Error)
	return subject
}

func seedChapter(t *testing.T, db *gorm.DB, subjectID uint, title string, grade, order int) models.Chapter {
	t.Helper()
	chapter := models.Chapter{SubjectID: subjectID, Title: title, Grade: grade, Order: order}
	require.NoError(t, db.Create(&chapter).Error)
	return chapter
}

func seedMaterial(t *testing.T, db *gorm.DB, chapterID uint, title, materialType string) models.Material {
	t.Helper()
	material := models.Material{
		ChapterID:  chapterID,
		Title:      title,
		Type:       materialType,
		ContentURL: "uploads/materials/" + title + ".bin",
	}
	require.NoError(t, db.Create(&material).Error)
	return material
}

// seedCatalog builds one subject with two chapters of three materials each.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Subject, []models.Chapter, []models.Material) {
	t.Helper()

	subject := seedSubject(t, db, "Mathematics", "science")
	chapters := []models.Chapter{
		seedChapter(t, db, subject.ID, "Algebra", 10, 1),
		seedChapter(t, db, subject.ID, "Geometry", 10, 2),
	}

	var materials []models.Material
	for i, chapter := range chapters {
		for j := 0; j < 3; j++ {
			title := fmt.Sprintf("mat-%d-%d", i, j)
			materials = append(materials, seedMaterial(t, db, chapter.ID, title, models.MaterialDocument))
		}
	}

	return subject, chapters, materials
}

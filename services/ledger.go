package services

import (
	"errors"
	"time"

	"elearn/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger owns the per-user, per-material completion records and bookmarks.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// RecordCompletion marks a material as completed for a user. It reports
// alreadyCompleted=true when the pair was completed before, in which case
// the caller must not award XP.
//
// The write is a conflict-ignore insert against the unique
// (user_id, material_id) index, so two concurrent completions of the same
// pair collapse to a single insert and a single XP award.
func (l *Ledger) RecordCompletion(userID, materialID uint) (alreadyCompleted bool, err error) {
	var material models.Material
	if err := l.db.First(&material, materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMaterialNotFound
		}
		return false, err
	}

	record := models.ProgressRecord{
		UserID:      userID,
		MaterialID:  materialID,
		IsCompleted: true,
		CompletedAt: time.Now(),
	}
	res := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
		DoNothing: true,
	}).Create(&record)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		// Newly inserted: first completion of this pair.
		return false, nil
	}

	// A row already exists. Flip it only if a previous attempt left it
	// incomplete; the WHERE clause keeps the check-and-set atomic.
	upd := l.db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND material_id = ? AND is_completed = ?", userID, materialID, false).
		Updates(map[string]interface{}{"is_completed": true, "completed_at": time.Now()})
	if upd.Error != nil {
		return false, upd.Error
	}

	return upd.RowsAffected == 0, nil
}

// ToggleBookmark flips the bookmark state for a (user, material) pair and
// returns the resulting state.
func (l *Ledger) ToggleBookmark(userID, materialID uint) (bookmarked bool, err error) {
	var material models.Material
	if err := l.db.First(&material, materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMaterialNotFound
		}
		return false, err
	}

	res := l.db.Unscoped().
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	bookmark := models.Bookmark{UserID: userID, MaterialID: materialID}
	if err := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
		DoNothing: true,
	}).Create(&bookmark).Error; err != nil {
		return false, err
	}

	return true, nil
}

// BookmarkEntry is one bookmark joined to its place in the content tree.
type BookmarkEntry struct {
	BookmarkID   uint            `json:"bookmark_id"`
	Material     models.Material `json:"material"`
	Chapter      models.Chapter  `json:"chapter"`
	SubjectTitle string          `json:"subject_title"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ListBookmarks returns the user's bookmarks joined to material, chapter and
// subject title. Bookmarks whose material no longer exists are skipped.
func (l *Ledger) ListBookmarks(userID uint) ([]BookmarkEntry, error) {
	var bookmarks []models.Bookmark
	if err := l.db.Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		return nil, err
	}

	entries := make([]BookmarkEntry, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		var material models.Material
		if err := l.db.First(&material, bookmark.MaterialID).Error; err != nil {
			// Dangling reference: the material was deleted after bookmarking.
			continue
		}

		entry := BookmarkEntry{
			BookmarkID: bookmark.ID,
			Material:   material,
			CreatedAt:  bookmark.CreatedAt,
		}

		var chapter models.Chapter
		if err := l.db.First(&chapter, material.ChapterID).Error; err == nil {
			entry.Chapter = chapter

			var subject models.Subject
			if err := l.db.Select("title").First(&subject, chapter.SubjectID).Error; err == nil {
				entry.SubjectTitle = subject.Title
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

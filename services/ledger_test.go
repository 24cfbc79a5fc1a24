package services

import (
	"sync"
	"testing"

	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletionIdempotent(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	xp := NewXPEngine(db)

	user := seedUser(t, db, "alice", 0)
	_, _, materials := seedCatalog(t, db)
	material := materials[0]

	// First completion awards
	already, err := ledger.RecordCompletion(user.ID, material.ID)
	require.NoError(t, err)
	assert.False(t, already)
	_, err = xp.AwardCompletionXP(user.ID)
	require.NoError(t, err)

	// Second completion of the same pair is a no-op; no award
	already, err = ledger.RecordCompletion(user.ID, material.ID)
	require.NoError(t, err)
	assert.True(t, already)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, XPMaterialCompleted, stored.XP)

	var count int64
	db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND material_id = ?", user.ID, material.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordCompletionConcurrentSingleAward(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	xp := NewXPEngine(db)

	user := seedUser(t, db, "racer", 0)
	_, _, materials := seedCatalog(t, db)
	material := materials[0]

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			already, err := ledger.RecordCompletion(user.ID, material.ID)
			if err == nil && !already {
				_, _ = xp.AwardCompletionXP(user.ID)
			}
		}()
	}
	wg.Wait()

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, XPMaterialCompleted, stored.XP, "exactly one completion may award")

	var count int64
	db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND material_id = ?", user.ID, material.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordCompletionUnknownMaterial(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	user := seedUser(t, db, "bob", 0)

	_, err := ledger.RecordCompletion(user.ID, 9999)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestToggleBookmarkIsItsOwnInverse(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	user := seedUser(t, db, "carol", 0)
	_, _, materials := seedCatalog(t, db)
	material := materials[0]

	bookmarked, err := ledger.ToggleBookmark(user.ID, material.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = ledger.ToggleBookmark(user.ID, material.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	var count int64
	db.Model(&models.Bookmark{}).
		Where("user_id = ? AND material_id = ?", user.ID, material.ID).
		Count(&count)
	assert.EqualValues(t, 0, count)

	// A third toggle starts over cleanly
	bookmarked, err = ledger.ToggleBookmark(user.ID, material.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestListBookmarksJoinsTree(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	user := seedUser(t, db, "dave", 0)
	subject, chapters, materials := seedCatalog(t, db)

	_, err := ledger.ToggleBookmark(user.ID, materials[0].ID)
	require.NoError(t, err)

	entries, err := ledger.ListBookmarks(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, materials[0].ID, entries[0].Material.ID)
	assert.Equal(t, chapters[0].ID, entries[0].Chapter.ID)
	assert.Equal(t, subject.Title, entries[0].SubjectTitle)
}

func TestListBookmarksSkipsDanglingMaterial(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	user := seedUser(t, db, "erin", 0)
	_, _, materials := seedCatalog(t, db)

	_, err := ledger.ToggleBookmark(user.ID, materials[0].ID)
	require.NoError(t, err)
	_, err = ledger.ToggleBookmark(user.ID, materials[1].ID)
	require.NoError(t, err)

	// Delete one material out from under its bookmark
	require.NoError(t, db.Delete(&models.Material{}, materials[0].ID).Error)

	entries, err := ledger.ListBookmarks(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, materials[1].ID, entries[0].Material.ID)
}

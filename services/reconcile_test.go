package services

import (
	"testing"

	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDetectsDrift(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	reconciler := NewReconciler(db)

	user := seedUser(t, db, "sven", 0)
	_, chapters, materials := seedCatalog(t, db)

	// Ledger writes committed, awards never ran: xp lags behind
	already, err := ledger.RecordCompletion(user.ID, materials[0].ID)
	require.NoError(t, err)
	require.False(t, already)
	require.NoError(t, db.Create(&models.Comment{
		UserID:    user.ID,
		ChapterID: chapters[0].ID,
		Content:   "unawarded",
	}).Error)

	assert.Equal(t, 1, reconciler.Reconcile())

	// Once the totals line up the drift disappears
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumn("xp", XPMaterialCompleted+XPCommentPosted).Error)
	assert.Equal(t, 0, reconciler.Reconcile())
}

func TestReconcileCleanLedger(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	xp := NewXPEngine(db)
	reconciler := NewReconciler(db)

	user := seedUser(t, db, "tara", 0)
	_, _, materials := seedCatalog(t, db)

	already, err := ledger.RecordCompletion(user.ID, materials[0].ID)
	require.NoError(t, err)
	require.False(t, already)
	_, err = xp.AwardCompletionXP(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, reconciler.Reconcile())
}

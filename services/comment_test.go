package services

import (
	"testing"
	"time"

	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCommentAwardsXP(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db, NewXPEngine(db))

	user := seedUser(t, db, "olga", 0)
	_, chapters, _ := seedCatalog(t, db)

	view, err := comments.PostComment(user.ID, chapters[0].ID, "Great chapter!")
	require.NoError(t, err)
	assert.Equal(t, "Great chapter!", view.Content)
	assert.Equal(t, user.Name, view.Author.Name)
	// The author is read back after the award
	assert.Equal(t, XPCommentPosted, view.Author.XP)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, XPCommentPosted, stored.XP)
}

func TestPostCommentManyPerChapterAllowed(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db, NewXPEngine(db))

	user := seedUser(t, db, "pete", 0)
	_, chapters, _ := seedCatalog(t, db)

	for i := 0; i < 3; i++ {
		_, err := comments.PostComment(user.ID, chapters[0].ID, "another thought")
		require.NoError(t, err)
	}

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 3*XPCommentPosted, stored.XP)
}

func TestPostCommentUnknownChapter(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db, NewXPEngine(db))

	user := seedUser(t, db, "quinn", 0)

	_, err := comments.PostComment(user.ID, 9999, "hello?")
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestListCommentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db, NewXPEngine(db))

	user := seedUser(t, db, "rosa", 0)
	_, chapters, _ := seedCatalog(t, db)
	chapter := chapters[0]

	now := time.Now()
	for i, content := range []string{"first", "second", "third"} {
		comment := models.Comment{
			UserID:    user.ID,
			ChapterID: chapter.ID,
			Content:   content,
		}
		comment.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&comment).Error)
	}

	views, err := comments.ListComments(chapter.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "third", views[0].Content)
	assert.Equal(t, "second", views[1].Content)
	assert.Equal(t, "first", views[2].Content)
	assert.Equal(t, user.Name, views[0].Author.Name)
}

func TestListCommentsEmptyChapter(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db, NewXPEngine(db))

	_, chapters, _ := seedCatalog(t, db)

	views, err := comments.ListComments(chapters[1].ID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

package services

import (
	"errors"
	"log"
	"time"

	"elearn/models"

	"gorm.io/gorm"
)

// CommentService owns the per-chapter discussion threads.
type CommentService struct {
	db *gorm.DB
	xp *XPEngine
}

func NewCommentService(db *gorm.DB, xp *XPEngine) *CommentService {
	return &CommentService{db: db, xp: xp}
}

// CommentAuthor is the thread display info for a comment's author.
type CommentAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	XP     int    `json:"xp"`
}

type CommentView struct {
	ID        uint          `json:"id"`
	ChapterID uint          `json:"chapter_id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Author    CommentAuthor `json:"author"`
}

// PostComment creates a comment on a chapter and awards comment XP. The
// comment is durable even if the award fails; the author is re-read after
// the award so the returned xp reflects it.
func (s *CommentService) PostComment(userID, chapterID uint, content string) (*CommentView, error) {
	if err := s.db.Select("id").First(&models.Chapter{}, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		UserID:    userID,
		ChapterID: chapterID,
		Content:   content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if _, err := s.xp.AwardCommentXP(userID); err != nil {
		// The comment stays; the reconcile job picks up the missing points.
		log.Printf("comment %d saved but xp award failed for user %d: %v", comment.ID, userID, err)
	}

	var author models.User
	if err := s.db.First(&author, userID).Error; err != nil {
		return nil, err
	}

	return &CommentView{
		ID:        comment.ID,
		ChapterID: comment.ChapterID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    CommentAuthor{Name: author.Name, Avatar: author.Avatar, XP: author.XP},
	}, nil
}

// ListComments returns a chapter's comments newest first, each with the
// author's display info.
func (s *CommentService) ListComments(chapterID uint) ([]CommentView, error) {
	var comments []models.Comment
	if err := s.db.Where("chapter_id = ?", chapterID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = CommentView{
			ID:        comment.ID,
			ChapterID: comment.ChapterID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}

		var author models.User
		if err := s.db.First(&author, comment.UserID).Error; err == nil {
			views[i].Author = CommentAuthor{Name: author.Name, Avatar: author.Avatar, XP: author.XP}
		}
	}

	return views, nil
}

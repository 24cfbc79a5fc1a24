package interactionController

import (
	"errors"
	"log"
	"strconv"

	"elearn/middleware"
	"elearn/services"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Ledger   *services.Ledger
	XP       *services.XPEngine
	Comments *services.CommentService
}

func New(ledger *services.Ledger, xp *services.XPEngine, comments *services.CommentService) *Controller {
	return &Controller{Ledger: ledger, XP: xp, Comments: comments}
}

// MarkComplete records a material completion and awards XP exactly once per
// (user, material) pair.
func (ctl *Controller) MarkComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		MaterialID uint `json:"materialId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	alreadyCompleted, err := ctl.Ledger.RecordCompletion(userID, reqData.MaterialID)
	if err != nil {
		if errors.Is(err, services.ErrMaterialNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
		}
		log.Printf("Error recording completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if alreadyCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Material already completed.", fiber.Map{
			"xpGained":         0,
			"alreadyCompleted": true,
		})
	}

	newTotal, err := ctl.XP.AwardCompletionXP(userID)
	if err != nil {
		// The completion is recorded; the reconcile job picks up the points.
		log.Printf("completion recorded but xp award failed for user %d material %d: %v", userID, reqData.MaterialID, err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Material completed!", fiber.Map{
			"xpGained":         0,
			"alreadyCompleted": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material completed! XP gained.", fiber.Map{
		"xpGained":         services.XPMaterialCompleted,
		"currentXp":        newTotal,
		"alreadyCompleted": false,
	})
}

// ToggleBookmark flips the saved-for-later state of a material.
func (ctl *Controller) ToggleBookmark(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBookmark").(*struct {
		MaterialID uint `json:"materialId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	bookmarked, err := ctl.Ledger.ToggleBookmark(userID, reqData.MaterialID)
	if err != nil {
		if errors.Is(err, services.ErrMaterialNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
		}
		log.Printf("Error toggling bookmark: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to toggle bookmark!", nil)
	}

	message := "Bookmark removed."
	if bookmarked {
		message = "Bookmark added."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"bookmarked": bookmarked,
	})
}

// ListBookmarks returns the user's bookmarks joined to the content tree.
func (ctl *Controller) ListBookmarks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	entries, err := ctl.Ledger.ListBookmarks(userID)
	if err != nil {
		log.Printf("Error listing bookmarks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookmarks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmarks retrieved successfully!", entries)
}

// PostComment adds a comment to a chapter thread and awards comment XP.
func (ctl *Controller) PostComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		ChapterID uint   `json:"chapterId"`
		Content   string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment, err := ctl.Comments.PostComment(userID, reqData.ChapterID, reqData.Content)
	if err != nil {
		if errors.Is(err, services.ErrChapterNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		log.Printf("Error posting comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added.", comment)
}

// ListComments returns a chapter's thread, newest first.
func (ctl *Controller) ListComments(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("chapterId"))
	if err != nil || chapterID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	comments, err := ctl.Comments.ListComments(uint(chapterID))
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments retrieved successfully!", comments)
}

// Leaderboard returns the top users by xp.
func (ctl *Controller) Leaderboard(c *fiber.Ctx) error {
	entries, err := ctl.XP.Leaderboard()
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard retrieved successfully!", entries)
}

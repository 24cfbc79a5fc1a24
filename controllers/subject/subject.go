package subjectController

import (
	"errors"
	"strconv"

	"elearn/middleware"
	"elearn/services"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Progress *services.ProgressService
}

func New(progress *services.ProgressService) *Controller {
	return &Controller{Progress: progress}
}

// List returns the catalog filtered by optional keyword/category query
// params, with the acting user's progress per subject.
func (ctl *Controller) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	keyword := c.Query("keyword")
	category := c.Query("category")

	subjects, err := ctl.Progress.SubjectsWithProgress(userID, keyword, category)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects retrieved successfully!", subjects)
}

// Detail returns one subject with chapters grouped by grade, materials
// decorated with the user's completion and bookmark state.
func (ctl *Controller) Detail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	detail, err := ctl.Progress.SubjectDetailFor(userID, uint(subjectID))
	if err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subject detail!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject detail retrieved successfully!", detail)
}

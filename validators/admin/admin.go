package adminValidator

import (
	"strings"

	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// CreateChapter validator middleware
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubjectID uint   `json:"subjectId"`
			Title     string `json:"title"`
			Grade     int    `json:"grade"`
			Order     int    `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SubjectID == 0 {
			errors["subjectId"] = "Subject ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if !models.IsValidGrade(reqData.Grade) {
			errors["grade"] = "Grade must be 10, 11 or 12!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// UpdateChapter validator middleware. All fields optional; zero grade means
// "leave unchanged".
func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
			Grade *int   `json:"grade"`
			Order *int   `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Grade != nil && !models.IsValidGrade(*reqData.Grade) {
			errors["grade"] = "Grade must be 10, 11 or 12!"
		}
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapterUpdate", reqData)
		return c.Next()
	}
}

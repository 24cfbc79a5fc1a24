package interactionValidator

import (
	"strings"

	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkComplete validator middleware
func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MaterialID uint `json:"materialId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MaterialID == 0 {
			errors["materialId"] = "Material ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// ToggleBookmark validator middleware
func ToggleBookmark() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MaterialID uint `json:"materialId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MaterialID == 0 {
			errors["materialId"] = "Material ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookmark", reqData)
		return c.Next()
	}
}

// PostComment validator middleware
func PostComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChapterID uint   `json:"chapterId"`
			Content   string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChapterID == 0 {
			errors["chapterId"] = "Chapter ID is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

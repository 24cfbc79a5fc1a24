package adminController

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"elearn/config"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller carries the catalog admin endpoints: subject, chapter and
// material CRUD. Subject and material accept multipart uploads, so their
// fields are read straight from the form instead of a JSON validator.
type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

func (ctl *Controller) CreateSubject(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
	}

	subject := models.Subject{
		Title:       title,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}

	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file, filepath.Join(ctl.Cfg.UploadDir, "subjects"))
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		subject.Thumbnail = path
	}

	if err := ctl.DB.Create(&subject).Error; err != nil {
		utils.RemoveFile(subject.Thumbnail)
		log.Printf("Error creating subject: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

func (ctl *Controller) UpdateSubject(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	var subject models.Subject
	if err := ctl.DB.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		subject.Title = title
	}
	if description := c.FormValue("description"); description != "" {
		subject.Description = description
	}
	if category := c.FormValue("category"); category != "" {
		subject.Category = category
	}

	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file, filepath.Join(ctl.Cfg.UploadDir, "subjects"))
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		utils.RemoveFile(subject.Thumbnail)
		subject.Thumbnail = path
	}

	if err := ctl.DB.Save(&subject).Error; err != nil {
		log.Printf("Error updating subject: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated successfully!", subject)
}

func (ctl *Controller) DeleteSubject(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	var subject models.Subject
	if err := ctl.DB.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	utils.RemoveFile(subject.Thumbnail)

	if err := ctl.DB.Delete(&subject).Error; err != nil {
		log.Printf("Error deleting subject: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject deleted successfully!", nil)
}

func (ctl *Controller) CreateChapter(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChapter").(*struct {
		SubjectID uint   `json:"subjectId"`
		Title     string `json:"title"`
		Grade     int    `json:"grade"`
		Order     int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctl.DB.Select("id").First(&models.Subject{}, reqData.SubjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Related subject not found!", nil)
	}

	chapter := models.Chapter{
		SubjectID: reqData.SubjectID,
		Title:     reqData.Title,
		Grade:     reqData.Grade,
		Order:     reqData.Order,
	}

	if err := ctl.DB.Create(&chapter).Error; err != nil {
		log.Printf("Error creating chapter: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

func (ctl *Controller) UpdateChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil || chapterID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*struct {
		Title string `json:"title"`
		Grade *int   `json:"grade"`
		Order *int   `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var chapter models.Chapter
	if err := ctl.DB.First(&chapter, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if strings.TrimSpace(reqData.Title) != "" {
		chapter.Title = reqData.Title
	}
	if reqData.Grade != nil {
		chapter.Grade = *reqData.Grade
	}
	if reqData.Order != nil {
		chapter.Order = *reqData.Order
	}

	if err := ctl.DB.Save(&chapter).Error; err != nil {
		log.Printf("Error updating chapter: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

func (ctl *Controller) DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil || chapterID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	res := ctl.DB.Delete(&models.Chapter{}, chapterID)
	if res.Error != nil {
		log.Printf("Error deleting chapter: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

func (ctl *Controller) CreateMaterial(c *fiber.Ctx) error {
	errors := make(map[string]string)

	chapterID, err := strconv.Atoi(c.FormValue("chapterId"))
	if err != nil || chapterID <= 0 {
		errors["chapterId"] = "Chapter ID is required!"
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		errors["title"] = "Title is required!"
	}
	materialType := c.FormValue("type")
	if !models.IsValidMaterialType(materialType) {
		errors["type"] = "Type must be document, slide or video!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	if err := ctl.DB.Select("id").First(&models.Chapter{}, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Related chapter not found!", nil)
	}

	// Content is either an uploaded file or a direct URL
	contentURL := c.FormValue("contentUrl")
	uploadedPath := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file, filepath.Join(ctl.Cfg.UploadDir, "materials"))
		if err != nil {
			log.Printf("Error saving material file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save material file!", nil)
		}
		uploadedPath = path
		contentURL = path
	}

	if contentURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Material file or content URL is required!", nil)
	}

	if uploadedPath == "" && utils.IsExternalURL(contentURL) {
		if err := utils.CheckContentURL(contentURL); err != nil {
			log.Printf("Warning: material content url not reachable: %v", err)
		}
	}

	material := models.Material{
		ChapterID:  uint(chapterID),
		Title:      title,
		Type:       materialType,
		ContentURL: contentURL,
	}

	if err := ctl.DB.Create(&material).Error; err != nil {
		utils.RemoveFile(uploadedPath)
		log.Printf("Error creating material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

func (ctl *Controller) UpdateMaterial(c *fiber.Ctx) error {
	materialID, err := strconv.Atoi(c.Params("id"))
	if err != nil || materialID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material ID!", nil)
	}

	var material models.Material
	if err := ctl.DB.First(&material, materialID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		material.Title = title
	}
	if materialType := c.FormValue("type"); materialType != "" {
		if !models.IsValidMaterialType(materialType) {
			return middleware.ValidationErrorResponse(c, map[string]string{"type": "Type must be document, slide or video!"})
		}
		material.Type = materialType
	}
	if contentURL := c.FormValue("contentUrl"); contentURL != "" {
		if utils.IsExternalURL(contentURL) {
			if err := utils.CheckContentURL(contentURL); err != nil {
				log.Printf("Warning: material content url not reachable: %v", err)
			}
		}
		if !utils.IsExternalURL(material.ContentURL) {
			utils.RemoveFile(material.ContentURL)
		}
		material.ContentURL = contentURL
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file, filepath.Join(ctl.Cfg.UploadDir, "materials"))
		if err != nil {
			log.Printf("Error saving material file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save material file!", nil)
		}
		if !utils.IsExternalURL(material.ContentURL) {
			utils.RemoveFile(material.ContentURL)
		}
		material.ContentURL = path
	}

	// Save runs the model hook, so IsDownloadable follows a type change.
	if err := ctl.DB.Save(&material).Error; err != nil {
		log.Printf("Error updating material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

func (ctl *Controller) DeleteMaterial(c *fiber.Ctx) error {
	materialID, err := strconv.Atoi(c.Params("id"))
	if err != nil || materialID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material ID!", nil)
	}

	var material models.Material
	if err := ctl.DB.First(&material, materialID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if !utils.IsExternalURL(material.ContentURL) {
		utils.RemoveFile(material.ContentURL)
	}

	if err := ctl.DB.Delete(&material).Error; err != nil {
		log.Printf("Error deleting material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}

package services

import (
	"errors"
	"math"
	"strings"

	"elearn/models"

	"gorm.io/gorm"
)

// defaultGrade is surfaced for subjects that have no chapters yet.
const defaultGrade = 10

// ProgressService derives percent-complete rollups from the raw ledger on
// every read; nothing here is cached or stored.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// percent rounds half away from zero. An empty denominator is 0, not 100.
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// SubjectProgress computes the user's percent-complete across every material
// under the subject.
func (s *ProgressService) SubjectProgress(userID, subjectID uint) (int, error) {
	if err := s.db.Select("id").First(&models.Subject{}, subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSubjectNotFound
		}
		return 0, err
	}

	completed, total, err := s.subjectCounts(userID, subjectID)
	if err != nil {
		return 0, err
	}
	return percent(completed, total), nil
}

// subjectCounts returns the user's completed count and the material total
// under one subject.
func (s *ProgressService) subjectCounts(userID, subjectID uint) (completed, total int, err error) {
	var chapterIDs []uint
	if err := s.db.Model(&models.Chapter{}).Where("subject_id = ?", subjectID).Pluck("id", &chapterIDs).Error; err != nil {
		return 0, 0, err
	}
	if len(chapterIDs) == 0 {
		return 0, 0, nil
	}

	var materialIDs []uint
	if err := s.db.Model(&models.Material{}).Where("chapter_id IN ?", chapterIDs).Pluck("id", &materialIDs).Error; err != nil {
		return 0, 0, err
	}
	if len(materialIDs) == 0 {
		return 0, 0, nil
	}

	var completedCount int64
	if err := s.db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND is_completed = ? AND material_id IN ?", userID, true, materialIDs).
		Count(&completedCount).Error; err != nil {
		return 0, 0, err
	}

	return int(completedCount), len(materialIDs), nil
}

// MaterialStatus is a material decorated with the user's completion and
// bookmark state.
type MaterialStatus struct {
	models.Material
	IsCompleted  bool `json:"is_completed"`
	IsBookmarked bool `json:"is_bookmarked"`
}

// ChapterDetail is a chapter with its decorated materials and rollup.
type ChapterDetail struct {
	models.Chapter
	Progress  int              `json:"progress"`
	Materials []MaterialStatus `json:"materials"`
}

// ChapterProgress computes one chapter's rollup plus per-material
// completion/bookmark decoration for display.
func (s *ProgressService) ChapterProgress(userID, chapterID uint) (*ChapterDetail, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}
	return s.chapterDetail(userID, chapter)
}

func (s *ProgressService) chapterDetail(userID uint, chapter models.Chapter) (*ChapterDetail, error) {
	var materials []models.Material
	if err := s.db.Where("chapter_id = ?", chapter.ID).Find(&materials).Error; err != nil {
		return nil, err
	}

	detail := &ChapterDetail{
		Chapter:   chapter,
		Materials: make([]MaterialStatus, len(materials)),
	}

	completed := 0
	for i, material := range materials {
		status := MaterialStatus{Material: material}

		var count int64
		s.db.Model(&models.ProgressRecord{}).
			Where("user_id = ? AND material_id = ? AND is_completed = ?", userID, material.ID, true).
			Count(&count)
		status.IsCompleted = count > 0

		s.db.Model(&models.Bookmark{}).
			Where("user_id = ? AND material_id = ?", userID, material.ID).
			Count(&count)
		status.IsBookmarked = count > 0

		if status.IsCompleted {
			completed++
		}
		detail.Materials[i] = status
	}

	detail.Progress = percent(completed, len(materials))
	return detail, nil
}

// SubjectSummary is one row of the subject list with the user's rollup.
type SubjectSummary struct {
	models.Subject
	Grade              int `json:"grade"`
	Progress           int `json:"progress"`
	TotalMaterials     int `json:"total_materials"`
	CompletedMaterials int `json:"completed_materials"`
}

// SubjectsWithProgress lists subjects matching the optional filters, each
// with the user's rollup. The keyword filter is a case-insensitive substring
// match on title; category is an exact match. The surfaced grade is the
// minimum grade among the subject's chapters.
func (s *ProgressService) SubjectsWithProgress(userID uint, keyword, category string) ([]SubjectSummary, error) {
	query := s.db.Model(&models.Subject{})
	if keyword != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var subjects []models.Subject
	if err := query.Find(&subjects).Error; err != nil {
		return nil, err
	}

	summaries := make([]SubjectSummary, len(subjects))
	for i, subject := range subjects {
		grade, err := s.subjectGrade(subject.ID)
		if err != nil {
			return nil, err
		}
		completed, total, err := s.subjectCounts(userID, subject.ID)
		if err != nil {
			return nil, err
		}

		summaries[i] = SubjectSummary{
			Subject:            subject,
			Grade:              grade,
			Progress:           percent(completed, total),
			TotalMaterials:     total,
			CompletedMaterials: completed,
		}
	}

	return summaries, nil
}

// subjectGrade surfaces the minimum grade among the subject's chapters,
// which is deterministic when a subject spans several grades.
func (s *ProgressService) subjectGrade(subjectID uint) (int, error) {
	var chapters []models.Chapter
	if err := s.db.Select("grade").Where("subject_id = ?", subjectID).Find(&chapters).Error; err != nil {
		return 0, err
	}
	if len(chapters) == 0 {
		return defaultGrade, nil
	}

	grade := chapters[0].Grade
	for _, chapter := range chapters[1:] {
		if chapter.Grade < grade {
			grade = chapter.Grade
		}
	}
	return grade, nil
}

// SubjectDetail is the full subject view: chapters decorated per user and
// grouped by grade for the client's grade tabs.
type SubjectDetail struct {
	Subject models.Subject           `json:"subject"`
	Grades  map[int][]*ChapterDetail `json:"grades"`
	Grade   int                      `json:"grade"`
}

// SubjectDetailFor returns the subject with chapters ordered by
// (grade asc, order asc), each carrying decorated materials and its rollup.
func (s *ProgressService) SubjectDetailFor(userID, subjectID uint) (*SubjectDetail, error) {
	var subject models.Subject
	if err := s.db.First(&subject, subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	var chapters []models.Chapter
	if err := s.db.Where("subject_id = ?", subjectID).
		Order("grade asc, display_order asc").
		Find(&chapters).Error; err != nil {
		return nil, err
	}

	detail := &SubjectDetail{
		Subject: subject,
		Grades:  make(map[int][]*ChapterDetail, len(models.ValidGrades)),
		Grade:   defaultGrade,
	}
	for _, grade := range models.ValidGrades {
		detail.Grades[grade] = []*ChapterDetail{}
	}
	if len(chapters) > 0 {
		// Chapters are ordered by grade, so the first one carries the minimum.
		detail.Grade = chapters[0].Grade
	}

	for _, chapter := range chapters {
		chapterDetail, err := s.chapterDetail(userID, chapter)
		if err != nil {
			return nil, err
		}
		detail.Grades[chapter.Grade] = append(detail.Grades[chapter.Grade], chapterDetail)
	}

	return detail, nil
}

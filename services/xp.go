package services

import (
	"elearn/models"

	"gorm.io/gorm"
)

// Gamification point values.
const (
	XPMaterialCompleted = 10
	XPCommentPosted     = 5
)

// leaderboardSize is the fixed number of entries the leaderboard returns.
const leaderboardSize = 5

// XPEngine converts ledger events into point totals on the user profile.
type XPEngine struct {
	db *gorm.DB
}

func NewXPEngine(db *gorm.DB) *XPEngine {
	return &XPEngine{db: db}
}

// AwardCompletionXP credits the user for completing a material and returns
// the new total.
func (e *XPEngine) AwardCompletionXP(userID uint) (int, error) {
	return e.award(userID, XPMaterialCompleted)
}

// AwardCommentXP credits the user for posting a comment and returns the
// new total.
func (e *XPEngine) AwardCommentXP(userID uint) (int, error) {
	return e.award(userID, XPCommentPosted)
}

// award increments xp with a single column expression so concurrent awards
// for the same user never lose updates.
func (e *XPEngine) award(userID uint, points int) (int, error) {
	res := e.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", points))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}

	var user models.User
	if err := e.db.First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.XP, nil
}

type LeaderboardEntry struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	XP     int    `json:"xp"`
}

// Leaderboard returns the top users ordered by xp descending.
func (e *XPEngine) Leaderboard() ([]LeaderboardEntry, error) {
	var users []models.User
	if err := e.db.Order("xp desc").Limit(leaderboardSize).Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		entries[i] = LeaderboardEntry{Name: user.Name, Avatar: user.Avatar, XP: user.XP}
	}
	return entries, nil
}

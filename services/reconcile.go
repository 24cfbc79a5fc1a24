package services

import (
	"log"
	"time"

	"elearn/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Reconciler periodically checks stored xp totals against what the ledger
// and comment counts imply. Completions and comments commit before their
// award, so a failed award leaves a user below the implied total; this job
// surfaces that drift in the logs. It never writes.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

func logReconcile(format string, args ...interface{}) {
	log.Printf("[XP-RECONCILE %s] "+format, append([]interface{}{time.Now().Format(time.RFC3339)}, args...)...)
}

// Reconcile runs one pass and returns the number of drifted users.
func (r *Reconciler) Reconcile() int {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		logReconcile("Error fetching users: %v", err)
		return 0
	}

	drifted := 0
	for _, user := range users {
		var completions int64
		if err := r.db.Model(&models.ProgressRecord{}).
			Where("user_id = ? AND is_completed = ?", user.ID, true).
			Count(&completions).Error; err != nil {
			logReconcile("Error counting completions for user %d: %v", user.ID, err)
			continue
		}

		var comments int64
		if err := r.db.Model(&models.Comment{}).
			Where("user_id = ?", user.ID).
			Count(&comments).Error; err != nil {
			logReconcile("Error counting comments for user %d: %v", user.ID, err)
			continue
		}

		expected := int(completions)*XPMaterialCompleted + int(comments)*XPCommentPosted
		if user.XP < expected {
			drifted++
			logReconcile("user %d xp drift: have %d, ledger implies at least %d", user.ID, user.XP, expected)
		}
	}

	if drifted > 0 {
		logReconcile("pass finished: %d user(s) drifted", drifted)
	}
	return drifted
}

// Start schedules periodic reconcile passes and returns the running cron.
func (r *Reconciler) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { r.Reconcile() }); err != nil {
		return nil, err
	}
	c.Start()
	logReconcile("scheduler started (%s)", spec)
	return c, nil
}

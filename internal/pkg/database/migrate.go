package database

import (
	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

// AutoMigrate keeps the schema in sync with the model definitions.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.School{},
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Service{},
		&model.Request{},
		&model.Follow{},
		&model.Review{},
		&model.SavedSearch{},
		&model.Report{},
		&model.Conversation{},
		&model.Message{},
		&model.Notification{},
		&model.Transaction{},
		&model.BoostPlan{},
		&model.ForumPost{},
		&model.ForumComment{},
		&model.StudyGroup{},
		&model.StudyGroupMember{},
		&model.StudyGroupMessage{},
		&model.OutboxEvent{},
	)
}

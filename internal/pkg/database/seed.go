package database

import (
	log "log/slog"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

// Seed inserts the default categories and boost plans on a fresh database.
func Seed(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := []model.Category{
			{Name: "Textbooks"},
			{Name: "Electronics"},
			{Name: "Dorm Essentials"},
			{Name: "Services"},
			{Name: "Clothing"},
			{Name: "Hostel Accommodation"},
			{Name: "Past Questions"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		log.Info("seeded default categories", "count", len(categories))
	}

	var planCount int64
	if err := db.Model(&model.BoostPlan{}).Count(&planCount).Error; err != nil {
		return err
	}
	if planCount == 0 {
		plans := []model.BoostPlan{
			{Name: "3-Day Boost", Price: 500, DurationDays: 3, IsActive: true},
			{Name: "7-Day Boost", Price: 1000, DurationDays: 7, IsActive: true},
			{Name: "30-Day Boost", Price: 3500, DurationDays: 30, IsActive: true},
		}
		if err := db.Create(&plans).Error; err != nil {
			return err
		}
		log.Info("seeded default boost plans", "count", len(plans))
	}

	return nil
}

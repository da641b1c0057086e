package seeders

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogSeeder loads a small demo product catalog with tags.
type CatalogSeeder struct{}

func (s *CatalogSeeder) Name() string { return "catalog" }

func (s *CatalogSeeder) Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tags := []models.Tag{
		{Name: "flowering"}, {Name: "low-maintenance"}, {Name: "pet-safe"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:        "Peace Lily",
			Price:       14.50,
			Category:    models.CategoryIndoor,
			Description: "Shade-tolerant flowering plant for desks and shelves.",
			Tags:        []models.Tag{tags[0]},
		},
		{
			Name:        "Snake Plant",
			Price:       11.00,
			Category:    models.CategoryIndoor,
			Description: "Nearly indestructible, thrives on neglect.",
			Tags:        []models.Tag{tags[1]},
		},
		{
			Name:        "Lavender",
			Price:       8.75,
			Category:    models.CategoryOutdoor,
			Description: "Fragrant perennial for sunny borders.",
			Tags:        []models.Tag{tags[0], tags[2]},
		},
		{
			Name:        "Boxwood Shrub",
			Price:       24.00,
			Category:    models.CategoryOutdoor,
			Description: "Dense evergreen hedge plant.",
			Tags:        []models.Tag{tags[1]},
		},
	}
	return db.Create(&products).Error
}

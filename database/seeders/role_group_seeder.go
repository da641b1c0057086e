package seeders

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleGroupSeeder creates the role groups registration depends on.
// Without the customer group, signup refuses to provision profiles.
type RoleGroupSeeder struct{}

func (s *RoleGroupSeeder) Name() string { return "role-groups" }

func (s *RoleGroupSeeder) Run(db *gorm.DB) error {
	groups := []models.RoleGroup{
		{Name: string(models.RoleAdmin)},
		{Name: string(models.RoleCustomer)},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&groups).Error
}

package seeders

import (
	"errors"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/auth"
	"gorm.io/gorm"
)

// AdminSeeder creates the initial admin account. The password comes from
// ADMIN_PASSWORD so installs never ship a hardcoded credential.
type AdminSeeder struct{}

func (s *AdminSeeder) Name() string { return "admin-user" }

func (s *AdminSeeder) Run(db *gorm.DB) error {
	username := config.Get("ADMIN_USERNAME", "admin")

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := config.Get("ADMIN_PASSWORD", "")
	if password == "" {
		return errors.New("seed: ADMIN_PASSWORD must be set to create the admin user")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    config.Get("ADMIN_EMAIL", "admin@example.com"),
		Password: hash,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// Package testkit provides shared helpers for service and repository
// tests: an in-memory database with the full schema applied and the role
// groups seeded.
package testkit

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/orderdesk/app/models"
)

// DB opens a fresh in-memory SQLite database with the schema migrated and
// both role groups present. Each call gets an isolated database.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.RoleGroup{},
		&models.User{},
		&models.Customer{},
		&models.Tag{},
		&models.Product{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	groups := []models.RoleGroup{
		{Name: string(models.RoleAdmin)},
		{Name: string(models.RoleCustomer)},
	}
	if err := db.Create(&groups).Error; err != nil {
		t.Fatalf("seed role groups: %v", err)
	}

	return db
}

// Product inserts a catalog product and returns it.
func Product(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	p := &models.Product{Name: name, Price: price, Category: models.CategoryIndoor}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

// Customer inserts a user plus its customer profile and returns both.
func Customer(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Customer) {
	t.Helper()

	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     models.RoleCustomer,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	c := &models.Customer{UserID: &u.ID, Name: username, Email: u.Email}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u, c
}

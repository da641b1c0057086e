package migrations

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_initial_schema", &createInitialSchema{})
}

// createInitialSchema lays down the whole data model: role groups, users,
// customer profiles, the product catalog with tags, and orders.
type createInitialSchema struct{}

func (m *createInitialSchema) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoleGroup{},
		&models.User{},
		&models.Customer{},
		&models.Tag{},
		&models.Product{},
		&models.Order{},
	)
}

func (m *createInitialSchema) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.Order{},
		"product_tags",
		&models.Product{},
		&models.Tag{},
		&models.Customer{},
		&models.User{},
		&models.RoleGroup{},
	)
}

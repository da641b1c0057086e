package repositories

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Tags").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Tags").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

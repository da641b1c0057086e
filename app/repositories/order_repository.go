package repositories

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *OrderRepository) Delete(order *models.Order) error {
	return r.db.Delete(order).Error
}

// FindByID loads an order with its product and customer associations.
// Either association may come back nil when the related row was removed.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Product").Preload("Customer").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ForCustomer returns the base query for one customer's orders, newest
// first. Callers layer filters on top with OrderFilter.Apply.
func (r *OrderRepository) ForCustomer(customerID uint) *gorm.DB {
	return r.db.Model(&models.Order{}).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC")
}

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountForCustomer(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountForCustomerByStatus(customerID uint, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("customer_id = ? AND status = ?", customerID, status).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Preload("User").First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByUserID resolves the profile owned by a user account. Every
// registered customer account owns exactly one profile.
func (r *CustomerRepository) FindByUserID(userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepository) All() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}

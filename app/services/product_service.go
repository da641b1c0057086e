package services

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"gorm.io/gorm"
)

const productCacheKey = "orderdesk:products:all"
const productCacheTTL = 5 * time.Minute

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns the full catalog. The listing is cached briefly since the
// catalog changes rarely and the page is hit on every order form load.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if cache.Get(productCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	_ = cache.Set(productCacheKey, products, productCacheTTL)
	return products, nil
}

// Get loads one product with its tags.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

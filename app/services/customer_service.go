package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/storage"
	"github.com/shashiranjanraj/orderdesk/pkg/validate"
	"gorm.io/gorm"
)

// UpdateProfileInput carries the editable profile fields. A nil Picture
// leaves the current profile picture untouched.
type UpdateProfileInput struct {
	Name  string `json:"name" validate:"required|max:150"`
	Phone string `json:"phone" validate:"nullable|numeric|digits_max:12"`
	Email string `json:"email" validate:"required|email|max:254"`

	Picture     io.Reader `json:"-"`
	PictureName string    `json:"-"`
}

// OrderTotals are the per-customer counterparts of the dashboard counts.
type OrderTotals struct {
	TotalOrders int64 `json:"total_orders"`
	Pending     int64 `json:"pending"`
	Delivered   int64 `json:"delivered"`
}

// CustomerDetail bundles one customer with their (possibly filtered)
// order history. OrderCount is the size of the filtered set; Totals always
// cover the customer's whole order book regardless of filter.
type CustomerDetail struct {
	Customer   *models.Customer `json:"customer"`
	Orders     []models.Order   `json:"orders"`
	OrderCount int              `json:"order_count"`
	Totals     OrderTotals      `json:"totals"`
}

type CustomerService struct {
	customers *repositories.CustomerRepository
	orders    *repositories.OrderRepository
}

func NewCustomerService(customers *repositories.CustomerRepository, orders *repositories.OrderRepository) *CustomerService {
	return &CustomerService{customers: customers, orders: orders}
}

// Detail returns a customer and their orders, narrowed by filter. Used by
// the admin customer page.
func (s *CustomerService) Detail(customerID uint, filter OrderFilter) (*CustomerDetail, error) {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var orders []models.Order
	q := filter.Apply(s.orders.ForCustomer(customerID))
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}

	totals, err := s.totals(customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer:   customer,
		Orders:     orders,
		OrderCount: len(orders),
		Totals:     totals,
	}, nil
}

func (s *CustomerService) totals(customerID uint) (OrderTotals, error) {
	var t OrderTotals
	var err error

	if t.TotalOrders, err = s.orders.CountForCustomer(customerID); err != nil {
		return t, err
	}
	if t.Pending, err = s.orders.CountForCustomerByStatus(customerID, models.StatusPending); err != nil {
		return t, err
	}
	if t.Delivered, err = s.orders.CountForCustomerByStatus(customerID, models.StatusDelivered); err != nil {
		return t, err
	}
	return t, nil
}

// SelfView resolves the calling account's own profile and orders. The
// customer is looked up through the user id, so one customer can never see
// another's orders no matter what ids appear in the request.
func (s *CustomerService) SelfView(userID uint, filter OrderFilter) (*CustomerDetail, error) {
	customer, err := s.customers.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Detail(customer.ID, filter)
}

// UpdateProfile edits the calling account's own profile. The picture, when
// present, is stored on the default disk and the stored path replaces the
// previous one.
func (s *CustomerService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.Customer, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return nil, NewValidationError(errs)
	}

	customer, err := s.customers.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Email = input.Email

	if input.Picture != nil {
		path := fmt.Sprintf("profile-pictures/%d-%d%s",
			customer.ID, time.Now().Unix(), filepath.Ext(input.PictureName))
		if err := storage.PutStream(path, input.Picture); err != nil {
			return nil, err
		}
		customer.ProfilePicture = path
	}

	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}

	logger.Info("customers: profile updated", "customer_id", customer.ID)
	return customer, nil
}

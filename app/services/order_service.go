package services

import (
	"errors"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
	"github.com/shashiranjanraj/orderdesk/pkg/validate"
	"gorm.io/gorm"
)

// OrderLine is one order in a batch create request. Status is optional and
// defaults to Pending.
type OrderLine struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Status    string `json:"status" validate:"nullable|in:Pending,Out for delivery,Delivered"`
	Note      string `json:"note" validate:"nullable|max:50"`
}

// UpdateOrderInput carries the editable fields of an order, including the
// customer it belongs to so an order can be reassigned.
type UpdateOrderInput struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	ProductID  uint   `json:"product_id" validate:"required"`
	Status     string `json:"status" validate:"required"`
	Note       string `json:"note" validate:"nullable|max:50"`
}

// DashboardSummary is the admin landing page aggregate.
type DashboardSummary struct {
	TotalOrders    int64 `json:"total_orders"`
	Pending        int64 `json:"pending"`
	OutForDelivery int64 `json:"out_for_delivery"`
	Delivered      int64 `json:"delivered"`
	TotalCustomers int64 `json:"total_customers"`
}

type OrderService struct {
	db        *gorm.DB
	orders    *repositories.OrderRepository
	products  *repositories.ProductRepository
	customers *repositories.CustomerRepository
}

func NewOrderService(db *gorm.DB, orders *repositories.OrderRepository, products *repositories.ProductRepository, customers *repositories.CustomerRepository) *OrderService {
	return &OrderService{db: db, orders: orders, products: products, customers: customers}
}

// Dashboard aggregates the order book counts shown on the admin landing
// page. Counts are live queries, not cached.
func (s *OrderService) Dashboard() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.TotalOrders, err = s.orders.CountAll(); err != nil {
		return nil, err
	}
	if summary.Pending, err = s.orders.CountByStatus(models.StatusPending); err != nil {
		return nil, err
	}
	if summary.OutForDelivery, err = s.orders.CountByStatus(models.StatusOutForDel); err != nil {
		return nil, err
	}
	if summary.Delivered, err = s.orders.CountByStatus(models.StatusDelivered); err != nil {
		return nil, err
	}
	if summary.TotalCustomers, err = s.customers.CountAll(); err != nil {
		return nil, err
	}

	return summary, nil
}

// CreateOrders inserts one pending order per line for the customer, all in
// a single transaction. A bad line anywhere rolls back the whole batch.
func (s *OrderService) CreateOrders(customerID uint, lines []OrderLine) ([]models.Order, error) {
	if len(lines) == 0 {
		return nil, NewValidationError(map[string]string{"orders": "At least one order line is required."})
	}

	if _, err := s.customers.FindByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for _, line := range lines {
		if errs := validate.Struct(line); validate.HasErrors(errs) {
			return nil, NewValidationError(errs)
		}
	}

	created := make([]models.Order, 0, len(lines))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)
		for _, line := range lines {
			exists, err := s.productExists(tx, line.ProductID)
			if err != nil {
				return err
			}
			if !exists {
				return NewValidationError(map[string]string{"product_id": "The selected product does not exist."})
			}

			status := line.Status
			if status == "" {
				status = models.StatusPending
			}

			productID := line.ProductID
			custID := customerID
			order := models.Order{
				CustomerID: &custID,
				ProductID:  &productID,
				Status:     status,
				Note:       line.Note,
			}
			if err := repo.Create(&order); err != nil {
				return err
			}
			created = append(created, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Add(float64(len(created)))
	logger.Info("orders: batch created", "customer_id", customerID, "count", len(created))
	return created, nil
}

func (s *OrderService) productExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Get loads one order with its associations.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// Update edits an existing order's product, status and note.
func (s *OrderService) Update(id uint, input UpdateOrderInput) (*models.Order, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return nil, NewValidationError(errs)
	}
	if !models.ValidStatus(input.Status) {
		return nil, NewValidationError(map[string]string{"status": "Unknown order status."})
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.customers.FindByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewValidationError(map[string]string{"customer_id": "The selected customer does not exist."})
		}
		return nil, err
	}

	exists, err := s.productExists(s.db, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewValidationError(map[string]string{"product_id": "The selected product does not exist."})
	}

	customerID := input.CustomerID
	productID := input.ProductID
	order.CustomerID = &customerID
	order.Customer = nil
	order.ProductID = &productID
	order.Product = nil
	order.Status = input.Status
	order.Note = input.Note

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes an order and returns it so callers can show what was
// removed. Controllers confirm with the user before calling this.
func (s *OrderService) Delete(id uint) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Delete(order); err != nil {
		return nil, err
	}

	metrics.OrdersDeleted.Inc()
	logger.Info("orders: deleted", "order_id", id)
	return order, nil
}

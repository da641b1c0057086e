package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repositories.NewOrderRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewCustomerRepository(db))
}

func TestCreateOrdersBatch(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)
	snake := testkit.Product(t, db, "Snake Plant", 11.00)

	created, err := svc.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID, Note: "gift wrap"},
		{ProductID: snake.ID},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, o := range created {
		assert.Equal(t, models.StatusPending, o.Status)
		require.NotNil(t, o.CustomerID)
		assert.Equal(t, customer.ID, *o.CustomerID)
	}
	assert.Equal(t, "gift wrap", created[0].Note)
}

func TestCreateOrdersHonoursLineStatus(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := svc.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID, Status: models.StatusDelivered},
		{ProductID: lily.ID}, // no status, defaults to Pending
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, models.StatusDelivered, created[0].Status)
	assert.Equal(t, models.StatusPending, created[1].Status)
}

func TestCreateOrdersRejectsUnknownLineStatus(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := svc.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID, Status: "Lost in transit"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestCreateOrdersBadLineRollsBackBatch(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := svc.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID},
		{ProductID: 9999}, // no such product
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// the good line must not survive the bad one
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrdersUnknownCustomer(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := svc.CreateOrders(42, []OrderLine{{ProductID: lily.ID}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrdersEmptyBatch(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)
	_, customer := testkit.Customer(t, db, "jane")

	_, err := svc.CreateOrders(customer.ID, nil)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateOrder(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)
	snake := testkit.Product(t, db, "Snake Plant", 11.00)

	created, err := svc.CreateOrders(customer.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	updated, err := svc.Update(created[0].ID, UpdateOrderInput{
		CustomerID: customer.ID,
		ProductID:  snake.ID,
		Status:     models.StatusOutForDel,
		Note:       "leave at door",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusOutForDel, updated.Status)
	assert.Equal(t, "leave at door", updated.Note)
	assert.Equal(t, "Snake Plant", updated.ProductName())
}

func TestUpdateOrderReassignsCustomer(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, jane := testkit.Customer(t, db, "jane")
	_, john := testkit.Customer(t, db, "john")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := svc.CreateOrders(jane.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	updated, err := svc.Update(created[0].ID, UpdateOrderInput{
		CustomerID: john.ID,
		ProductID:  lily.ID,
		Status:     models.StatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CustomerID)
	assert.Equal(t, john.ID, *updated.CustomerID)
}

func TestUpdateOrderRejectsUnknownCustomer(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, jane := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := svc.CreateOrders(jane.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	_, err = svc.Update(created[0].ID, UpdateOrderInput{
		CustomerID: 9999,
		ProductID:  lily.ID,
		Status:     models.StatusPending,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customer_id")
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)
	created, err := svc.CreateOrders(customer.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	_, err = svc.Update(created[0].ID, UpdateOrderInput{
		CustomerID: customer.ID,
		ProductID:  lily.ID,
		Status:     "Lost in transit",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestUpdateMissingOrder(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := svc.Update(42, UpdateOrderInput{CustomerID: 1, ProductID: lily.ID, Status: models.StatusPending})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderReturnsDeleted(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)
	created, err := svc.CreateOrders(customer.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	deleted, err := svc.Delete(created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Peace Lily", deleted.ProductName())
	assert.Equal(t, "Peace Lily - £14.50", deleted.ProductLabel())

	_, err = svc.Get(created[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingOrder(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, err := svc.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardCounts(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	testkit.Customer(t, db, "john")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := svc.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID}, {ProductID: lily.ID}, {ProductID: lily.ID},
	})
	require.NoError(t, err)

	_, err = svc.Update(created[0].ID, UpdateOrderInput{CustomerID: customer.ID, ProductID: lily.ID, Status: models.StatusDelivered})
	require.NoError(t, err)

	summary, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalOrders)
	assert.Equal(t, int64(2), summary.Pending)
	assert.Equal(t, int64(0), summary.OutForDelivery)
	assert.Equal(t, int64(1), summary.Delivered)
	assert.Equal(t, int64(2), summary.TotalCustomers)
}

func TestOrderSurvivesProductDeletion(t *testing.T) {
	db := testkit.DB(t)
	svc := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)
	created, err := svc.CreateOrders(customer.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, lily.ID).Error)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", created[0].ID).
		Update("product_id", nil).Error)

	order, err := svc.Get(created[0].ID)
	require.NoError(t, err)
	assert.Nil(t, order.Product)
	assert.Equal(t, "(deleted product)", order.ProductName())
	assert.Equal(t, "(deleted product)", order.ProductLabel())
}

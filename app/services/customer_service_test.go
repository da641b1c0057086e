package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

func newCustomerService(db *gorm.DB) *CustomerService {
	return NewCustomerService(
		repositories.NewCustomerRepository(db),
		repositories.NewOrderRepository(db))
}

func TestDetailWithOrders(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)
	orders := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := orders.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID, Note: "gift wrap"},
		{ProductID: lily.ID},
	})
	require.NoError(t, err)

	detail, err := svc.Detail(customer.ID, OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, "jane", detail.Customer.Name)
	assert.Len(t, detail.Orders, 2)
	assert.Equal(t, 2, detail.OrderCount)
}

func TestDetailUnknownCustomer(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)

	_, err := svc.Detail(42, OrderFilter{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDetailFilter(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)
	orders := newOrderService(db)

	_, customer := testkit.Customer(t, db, "jane")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := orders.CreateOrders(customer.ID, []OrderLine{
		{ProductID: lily.ID, Note: "gift wrap"},
		{ProductID: lily.ID, Note: "plain"},
	})
	require.NoError(t, err)

	_, err = orders.Update(created[0].ID, UpdateOrderInput{
		CustomerID: customer.ID,
		ProductID:  lily.ID,
		Status:     models.StatusDelivered,
		Note:       "gift wrap",
	})
	require.NoError(t, err)

	// status narrows, and the filtered count follows the filtered set while
	// the totals keep covering the whole order book
	detail, err := svc.Detail(customer.ID, OrderFilter{Status: models.StatusDelivered})
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, models.StatusDelivered, detail.Orders[0].Status)
	assert.Equal(t, 1, detail.OrderCount)
	assert.Equal(t, int64(2), detail.Totals.TotalOrders)

	// note substring narrows
	detail, err = svc.Detail(customer.ID, OrderFilter{Note: "gift"})
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)

	// criteria combine with AND
	detail, err = svc.Detail(customer.ID, OrderFilter{
		Status: models.StatusPending,
		Note:   "gift",
	})
	require.NoError(t, err)
	assert.Empty(t, detail.Orders)

	// a future window excludes everything
	detail, err = svc.Detail(customer.ID, OrderFilter{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, detail.Orders)

	// empty filter returns the full set
	detail, err = svc.Detail(customer.ID, OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, detail.Orders, 2)
}

func TestSelfViewScopedToCaller(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)
	orders := newOrderService(db)

	janeUser, jane := testkit.Customer(t, db, "jane")
	_, john := testkit.Customer(t, db, "john")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	_, err := orders.CreateOrders(jane.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)
	_, err = orders.CreateOrders(john.ID, []OrderLine{{ProductID: lily.ID}, {ProductID: lily.ID}})
	require.NoError(t, err)

	detail, err := svc.SelfView(janeUser.ID, OrderFilter{})
	require.NoError(t, err)

	// jane sees only her own single order, never john's two
	assert.Equal(t, jane.ID, detail.Customer.ID)
	require.Len(t, detail.Orders, 1)
	require.NotNil(t, detail.Orders[0].CustomerID)
	assert.Equal(t, jane.ID, *detail.Orders[0].CustomerID)
}

func TestSelfViewTotals(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)
	orders := newOrderService(db)

	janeUser, jane := testkit.Customer(t, db, "jane")
	_, john := testkit.Customer(t, db, "john")
	lily := testkit.Product(t, db, "Peace Lily", 14.50)

	created, err := orders.CreateOrders(jane.ID, []OrderLine{
		{ProductID: lily.ID}, {ProductID: lily.ID},
	})
	require.NoError(t, err)
	_, err = orders.CreateOrders(john.ID, []OrderLine{{ProductID: lily.ID}})
	require.NoError(t, err)

	_, err = orders.Update(created[0].ID, UpdateOrderInput{
		CustomerID: jane.ID,
		ProductID:  lily.ID,
		Status:     models.StatusDelivered,
	})
	require.NoError(t, err)

	detail, err := svc.SelfView(janeUser.ID, OrderFilter{})
	require.NoError(t, err)

	// aggregates cover jane's order book only, john's order never counts
	assert.Equal(t, int64(2), detail.Totals.TotalOrders)
	assert.Equal(t, int64(1), detail.Totals.Pending)
	assert.Equal(t, int64(1), detail.Totals.Delivered)
	assert.Equal(t, 2, detail.OrderCount)
}

func TestSelfViewNoProfile(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)

	admin := models.User{Username: "boss", Email: "boss@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	_, err := svc.SelfView(admin.ID, OrderFilter{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)

	janeUser, _ := testkit.Customer(t, db, "jane")

	updated, err := svc.UpdateProfile(janeUser.ID, UpdateProfileInput{
		Name:  "Jane Doe",
		Phone: "0123456789",
		Email: "jane.doe@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "0123456789", updated.Phone)
	assert.Equal(t, "jane.doe@example.com", updated.Email)
}

func TestUpdateProfileValidation(t *testing.T) {
	db := testkit.DB(t)
	svc := newCustomerService(db)

	janeUser, _ := testkit.Customer(t, db, "jane")

	_, err := svc.UpdateProfile(janeUser.ID, UpdateProfileInput{
		Name:  "Jane",
		Phone: strings.Repeat("9", 15),
		Email: "not-an-email",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "email")
}

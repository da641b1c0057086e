package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Order statuses. Transitions are deliberately free-form: any status can be
// set from any other.
const (
	StatusPending   = "Pending"
	StatusOutForDel = "Out for delivery"
	StatusDelivered = "Delivered"
)

// OrderStatuses lists every accepted status value, in lifecycle order.
var OrderStatuses = []string{StatusPending, StatusOutForDel, StatusDelivered}

// ValidStatus reports whether s is one of the accepted order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order links one customer to one product. Both references are nullable:
// deleting either parent sets the reference to NULL and the order record
// survives as an orphan rather than cascading away.
type Order struct {
	gorm.Model
	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	ProductID  *uint     `gorm:"index" json:"product_id"`
	Product    *Product  `gorm:"constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Status     string    `gorm:"size:25;default:Pending" json:"status"`
	Note       string    `gorm:"size:50" json:"note"`
}

// ProductName is a nil-safe accessor for notification text; orphaned orders
// report a placeholder instead of panicking.
func (o *Order) ProductName() string {
	if o.Product == nil {
		return "(deleted product)"
	}
	return o.Product.Name
}

// ProductLabel renders the product name with its price for notification
// text, nil-safe like ProductName.
func (o *Order) ProductLabel() string {
	if o.Product == nil {
		return "(deleted product)"
	}
	return fmt.Sprintf("%s - £%.2f", o.Product.Name, o.Product.Price)
}

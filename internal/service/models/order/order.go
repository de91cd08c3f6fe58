package order

import (
	"time"

	"github.com/mybasket/basket-svc/internal/service/models/orderitem"
)

// Address represents a postal address attached to an order.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order represents a committed order in the system.
type Order struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	Items           []orderitem.OrderItem `json:"items"`
	TotalCents      int64                 `json:"totalCents"`
	Status          Status                `json:"status"`
	ShippingAddress Address               `json:"shippingAddress"`
	BillingAddress  Address               `json:"billingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	OrderDate       time.Time             `json:"orderDate"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = make([]orderitem.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)

	return &clone
}

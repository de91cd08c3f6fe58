package order

// ItemSubmission represents one client-submitted order line, carrying the
// price the client last saw. It is verified against the cart ledger
// before any order is committed.
type ItemSubmission struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderModel represents a checkout request: the client's view of
// its cart plus the order details.
type CreateOrderModel struct {
	UserID          string           `json:"userId"`
	Items           []ItemSubmission `json:"items"`
	ShippingAddress Address          `json:"shippingAddress"`
	BillingAddress  Address          `json:"billingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
}

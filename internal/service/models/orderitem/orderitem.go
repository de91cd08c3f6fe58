package orderitem

// OrderItem represents an item within an order, frozen from the cart
// snapshot the order was committed from.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

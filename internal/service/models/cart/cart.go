package cart

// Item represents one cart line: a product reference with the price
// pinned at the moment the product first entered the cart.
type Item struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Cart represents the authoritative cart state of one user.
type Cart struct {
	UserID     string `json:"userId"`
	Items      []Item `json:"items"`
	TotalCents int64  `json:"totalCents"`
	TotalItems int    `json:"totalItems"`
}

// Summary represents the condensed totals-only view of a cart.
type Summary struct {
	UserID     string `json:"userId"`
	TotalCents int64  `json:"totalCents"`
	TotalItems int    `json:"totalItems"`
}

// New creates a new empty Cart for the given user.
func New(userID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []Item{},
	}
}

// Find returns the item holding the given product, or nil when the
// product is not in the cart. The pointer aliases the cart's own slice.
func (c *Cart) Find(productID string) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

// Remove deletes the line for the given product, preserving the order of
// the remaining items, and reports whether the product was present.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// Recalculate recomputes both derived totals from scratch over the items.
func (c *Cart) Recalculate() {
	var cents int64
	var count int
	for i := range c.Items {
		cents += c.Items[i].PriceCents * int64(c.Items[i].Quantity)
		count += c.Items[i].Quantity
	}
	c.TotalCents = cents
	c.TotalItems = count
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]Item, len(c.Items))
	copy(clone.Items, c.Items)

	return &clone
}

// Summary returns the totals-only view of the cart.
func (c *Cart) Summary() Summary {
	return Summary{
		UserID:     c.UserID,
		TotalCents: c.TotalCents,
		TotalItems: c.TotalItems,
	}
}

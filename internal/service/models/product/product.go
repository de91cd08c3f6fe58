package product

// Product represents a catalog product as the catalog service exposes it.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

package catalog

import (
	"context"
	"sync"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	"github.com/mybasket/basket-svc/internal/service/models/product"
)

// StaticCatalog serves the built-in demo catalog from memory. It backs
// local runs where no external catalog service is configured.
type StaticCatalog struct {
	mu       sync.RWMutex
	products map[string]product.Product
}

// NewStaticCatalog creates a catalog preloaded with the demo products.
func NewStaticCatalog() *StaticCatalog {
	seed := []product.Product{
		{ID: "1", Name: "Wireless Mouse", PriceCents: 2550, Description: "Compact 2.4 GHz mouse with silent clicks", Image: "/images/wireless-mouse.jpg", Category: "electronics"},
		{ID: "2", Name: "Mechanical Keyboard", PriceCents: 8999, Description: "Tenkeyless board with brown switches", Image: "/images/mechanical-keyboard.jpg", Category: "electronics"},
		{ID: "3", Name: "Ceramic Mug", PriceCents: 1099, Description: "350 ml stoneware mug", Image: "/images/ceramic-mug.jpg", Category: "home"},
		{ID: "4", Name: "Dotted Notebook", PriceCents: 475, Description: "A5 notebook, 120 pages", Image: "/images/dotted-notebook.jpg", Category: "stationery"},
		{ID: "5", Name: "Steel Water Bottle", PriceCents: 1525, Description: "750 ml insulated bottle", Image: "/images/steel-water-bottle.jpg", Category: "home"},
		{ID: "6", Name: "USB-C Cable", PriceCents: 999, Description: "2 m braided charging cable", Image: "/images/usb-c-cable.jpg", Category: "electronics"},
		{ID: "7", Name: "Desk Plant", PriceCents: 1249, Description: "Low-maintenance succulent in a pot", Image: "/images/desk-plant.jpg", Category: "home"},
		{ID: "8", Name: "Laptop Stand", PriceCents: 3450, Description: "Foldable aluminium stand", Image: "/images/laptop-stand.jpg", Category: "electronics"},
	}

	products := make(map[string]product.Product, len(seed))
	for _, p := range seed {
		products[p.ID] = p
	}

	return &StaticCatalog{products: products}
}

// GetProduct returns the demo product with the given id.
func (s *StaticCatalog) GetProduct(ctx context.Context, productID string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, icatalog.ErrProductNotFound
	}

	return &p, nil
}

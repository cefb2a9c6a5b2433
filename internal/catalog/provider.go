package catalog

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("catalog: product not found")

// Product is a storefront catalog entry. Prices are major currency units.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Provider is a read-only source of catalog data.
type Provider interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (Product, error)
}

// Static serves a fixed product list supplied at construction time.
type Static struct {
	products []Product
}

// NewStatic builds a Static provider over a copy of the given products.
func NewStatic(products []Product) *Static {
	copied := make([]Product, len(products))
	copy(copied, products)
	return &Static{products: copied}
}

// List returns all products.
func (s *Static) List(_ context.Context) ([]Product, error) {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Get returns the product with the given id or ErrNotFound.
func (s *Static) Get(_ context.Context, id int) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// DefaultProducts returns the demo storefront catalog.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Wireless Headphones",
			Description: "Premium wireless headphones with noise cancellation",
			Price:       1.00,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		},
		{
			ID:          2,
			Name:        "Smart Watch",
			Description: "Feature-rich smartwatch with health tracking",
			Price:       1.00,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		},
		{
			ID:          3,
			Name:        "Laptop Stand",
			Description: "Ergonomic aluminum laptop stand",
			Price:       1.00,
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400",
		},
		{
			ID:          4,
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches",
			Price:       1.00,
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400",
		},
	}
}

package ports

import (
	"context"

	"github.com/shoplane/catalog-service/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Stock       int
	ImageURL    string
}

// UpdateProductInput is a presence-tagged field set for partial updates.
// A nil field means "leave unchanged"; a non-nil field is applied even when
// it points at a zero value, so stock can legitimately be set to 0.
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Description *string
	Category    *string
	Stock       *int
	ImageURL    *string
}

// Empty reports whether no field is present.
func (in UpdateProductInput) Empty() bool {
	return in.Name == nil && in.Price == nil && in.Description == nil &&
		in.Category == nil && in.Stock == nil && in.ImageURL == nil
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

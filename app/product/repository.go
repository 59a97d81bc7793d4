package product

import (
	"blessindo/domain"
	"context"
)

type Repository interface {
	GetProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error)
	CountProducts(ctx context.Context, filter domain.ProductFilter) (int, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	// UpdateProduct replaces the row and returns it together with the row as it
	// was before the update.
	UpdateProduct(ctx context.Context, product domain.Product) (updated domain.Product, previous domain.Product, err error)
	// DeleteProduct returns the deleted row.
	DeleteProduct(ctx context.Context, id int64) (domain.Product, error)
}

// ImageRemover deletes a stored image by its public URL.
type ImageRemover interface {
	DeleteByURL(url string) (bool, error)
}

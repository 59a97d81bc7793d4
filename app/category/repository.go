package category

import (
	"blessindo/domain"
	"context"
)

type Repository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	CountCategoryProducts(ctx context.Context, id int64) (int, error)
	DeleteCategory(ctx context.Context, id int64) error
}

package category

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
)

type GetCategoriesHandler struct {
	repository Repository
}

func NewGetCategoriesHandler(repository Repository) *GetCategoriesHandler {
	return &GetCategoriesHandler{
		repository: repository,
	}
}

type GetCategoriesRequest struct{}

type GetCategoriesResponse = []domain.Category

func (h GetCategoriesHandler) Handle(ctx context.Context, _ *GetCategoriesRequest) (*GetCategoriesResponse, error) {
	categories, err := h.repository.GetCategories(ctx)
	if err != nil {
		return nil, httperror.InternalServerError(
			"category.index.failed",
			"Failed to retrieve categories",
			err.Error(),
		)
	}

	return &categories, nil
}

package product

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
	"errors"
)

type GetProductHandler struct {
	repository Repository
}

func NewGetProductHandler(repository Repository) *GetProductHandler {
	return &GetProductHandler{
		repository: repository,
	}
}

type GetProductRequest struct {
	ID int64 `params:"id"`
}

type GetProductResponse = domain.Product

func (h GetProductHandler) Handle(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	product, err := h.repository.GetProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound(
				"product.show.not_found",
				"Product not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"product.show.failed",
			"Failed to retrieve product",
			err.Error(),
		)
	}

	return &product, nil
}

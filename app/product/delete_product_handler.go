package product

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"context"
	"errors"
)

type DeleteProductHandler struct {
	repository     Repository
	images         ImageRemover
	eventPublisher events.Publisher
}

func NewDeleteProductHandler(repository Repository, images ImageRemover, eventPublisher events.Publisher) *DeleteProductHandler {
	return &DeleteProductHandler{
		repository:     repository,
		images:         images,
		eventPublisher: eventPublisher,
	}
}

type DeleteProductRequest struct {
	ID int64 `params:"id"`
}

type DeleteProductResponse struct{}

func (h DeleteProductHandler) Handle(ctx context.Context, req *DeleteProductRequest) (*DeleteProductResponse, error) {
	product, err := h.repository.DeleteProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound(
				"product.destroy.not_found",
				"Product not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"product.destroy.failed",
			"Failed to delete product",
			err.Error(),
		)
	}

	if product.ImageURL != nil {
		removeImage(h.images, *product.ImageURL, product.ID)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductDeletedEvent, events.DeletedPayload{ID: product.ID})

	return nil, nil
}

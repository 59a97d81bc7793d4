package product

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"
	"errors"

	"go.uber.org/zap"
)

type UpdateProductHandler struct {
	repository     Repository
	images         ImageRemover
	eventPublisher events.Publisher
}

type UpdateProductRequest struct {
	ID int64 `params:"id"`
	ProductFields
}

type UpdateProductResponse = domain.Product

func NewUpdateProductHandler(repository Repository, images ImageRemover, eventPublisher events.Publisher) *UpdateProductHandler {
	return &UpdateProductHandler{
		repository:     repository,
		images:         images,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateProductHandler) Handle(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	if err := req.ProductFields.check("product.update.validation_failed"); err != nil {
		return nil, err
	}

	updated, previous, err := h.repository.UpdateProduct(ctx, req.toDomain(req.ID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, httperror.NotFound("product.update.not_found", "Product not found", nil)
		case errors.Is(err, domain.ErrInvalidReference):
			return nil, categoryMissing("product.update.category_missing")
		}

		return nil, httperror.InternalServerError(
			"product.update.update_failed",
			"Failed to update product",
			err.Error(),
		)
	}

	// the row is committed at this point; a failed file removal only leaves an orphan
	if previous.ImageURL != nil && !nullable.Equal(previous.ImageURL, updated.ImageURL) {
		removeImage(h.images, *previous.ImageURL, updated.ID)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductUpdatedEvent, updated)

	return &updated, nil
}

func removeImage(images ImageRemover, url string, productID int64) {
	deleted, err := images.DeleteByURL(url)
	if err != nil {
		zap.L().Error("Failed to delete product image",
			zap.Int64("productId", productID),
			zap.String("imageUrl", url),
			zap.Error(err),
		)
		return
	}

	if deleted {
		zap.L().Info("Deleted product image",
			zap.Int64("productId", productID),
			zap.String("imageUrl", url),
		)
	}
}

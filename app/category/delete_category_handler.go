package category

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"context"
	"errors"
)

type DeleteCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteCategoryHandler(repository Repository, eventPublisher events.Publisher) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteCategoryRequest struct {
	ID int64 `params:"id"`
}

type DeleteCategoryResponse struct{}

func (h DeleteCategoryHandler) Handle(ctx context.Context, req *DeleteCategoryRequest) (*DeleteCategoryResponse, error) {
	count, err := h.repository.CountCategoryProducts(ctx, req.ID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"category.destroy.count_failed",
			"Failed to delete category",
			err.Error(),
		)
	}

	if count > 0 {
		return nil, inUse()
	}

	err = h.repository.DeleteCategory(ctx, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, httperror.NotFound("category.destroy.not_found", "Category not found", nil)
		case errors.Is(err, domain.ErrInUse):
			// a product was attached between the count and the delete
			return nil, inUse()
		}

		return nil, httperror.InternalServerError(
			"category.destroy.failed",
			"Failed to delete category",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryDeletedEvent, events.DeletedPayload{ID: req.ID})

	return nil, nil
}

func inUse() error {
	return httperror.BadRequest(
		"category.destroy.has_products",
		"Cannot delete category with products",
		nil,
	)
}

package category

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"
	"errors"
)

type UpdateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type UpdateCategoryRequest struct {
	ID          int64   `params:"id"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

type UpdateCategoryResponse = domain.Category

func NewUpdateCategoryHandler(repository Repository, eventPublisher events.Publisher) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateCategoryHandler) Handle(ctx context.Context, req *UpdateCategoryRequest) (*UpdateCategoryResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, httperror.FromValidation(err, "category.update.validation_failed", "Category name is required")
	}

	category, err := h.repository.UpdateCategory(ctx, domain.Category{
		ID:          req.ID,
		Name:        req.Name,
		Description: nullable.String(req.Description),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, httperror.NotFound("category.update.not_found", "Category not found", nil)
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, httperror.BadRequest("category.update.duplicate", "Category name already exists", nil)
		}

		return nil, httperror.InternalServerError(
			"category.update.update_failed",
			"Failed to update category",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryUpdatedEvent, category)

	return &category, nil
}

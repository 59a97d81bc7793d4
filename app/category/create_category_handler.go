package category

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

type CreateCategoryResponse = domain.Category

func NewCreateCategoryHandler(repository Repository, eventPublisher events.Publisher) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateCategoryHandler) Handle(ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, httperror.FromValidation(err, "category.create.validation_failed", "Category name is required")
	}

	category, err := h.repository.CreateCategory(ctx, domain.Category{
		Name:        req.Name,
		Description: nullable.String(req.Description),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, httperror.BadRequest(
				"category.create.duplicate",
				"Category name already exists",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"category.create.create_failed",
			"Failed to create category",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryCreatedEvent, category)

	return &category, nil
}

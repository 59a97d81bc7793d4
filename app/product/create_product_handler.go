package product

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

const requiredFieldsMessage = "Name, description, and category are required"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductFields is the writable part of a product shared by create and update.
type ProductFields struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Description   string           `json:"description" validate:"required"`
	Price         nullable.Decimal `json:"price"`
	CategoryID    nullable.Int64   `json:"category_id"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,max=512"`
	TokopediaLink *string          `json:"tokopedia_link" validate:"omitempty,max=512"`
	ShopeeLink    *string          `json:"shopee_link" validate:"omitempty,max=512"`
	TiktokLink    *string          `json:"tiktok_link" validate:"omitempty,max=512"`
}

func (f ProductFields) check(code string) error {
	if err := validate.Struct(f); err != nil {
		return httperror.FromValidation(err, code, requiredFieldsMessage)
	}
	if !f.CategoryID.Valid || f.CategoryID.Value < 1 {
		return httperror.BadRequest(code, requiredFieldsMessage, "category_id is required")
	}
	return nil
}

func (f ProductFields) toDomain(id int64) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price.Value,
		CategoryID:    f.CategoryID.Value,
		ImageURL:      nullable.String(f.ImageURL),
		TokopediaLink: nullable.String(f.TokopediaLink),
		ShopeeLink:    nullable.String(f.ShopeeLink),
		TiktokLink:    nullable.String(f.TiktokLink),
	}
}

type CreateProductHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateProductRequest struct {
	ProductFields
}

type CreateProductResponse = domain.Product

func NewCreateProductHandler(repository Repository, eventPublisher events.Publisher) *CreateProductHandler {
	return &CreateProductHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateProductHandler) Handle(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	if err := req.ProductFields.check("product.create.validation_failed"); err != nil {
		return nil, err
	}

	product, err := h.repository.CreateProduct(ctx, req.toDomain(0))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return nil, categoryMissing("product.create.category_missing")
		}

		return nil, httperror.InternalServerError(
			"product.create.create_failed",
			"Failed to create product",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductCreatedEvent, product)

	return &product, nil
}

func categoryMissing(code string) error {
	return httperror.BadRequest(code, "Category does not exist", nil)
}

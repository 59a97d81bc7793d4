package client

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ClientFields struct {
	Name        string         `json:"name" validate:"required,max=255"`
	LogoURL     *string        `json:"logo_url" validate:"omitempty,max=512"`
	Website     *string        `json:"website" validate:"omitempty,max=512"`
	Description *string        `json:"description"`
	IsActive    *bool          `json:"is_active"`
	SortOrder   nullable.Int64 `json:"sort_order"`
}

func (f ClientFields) check(code string) error {
	if err := validate.Struct(f); err != nil {
		return httperror.FromValidation(err, code, "Client name is required")
	}
	return nil
}

type CreateClientHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateClientRequest struct {
	ClientFields
}

type CreateClientResponse = domain.Client

func NewCreateClientHandler(repository Repository, eventPublisher events.Publisher) *CreateClientHandler {
	return &CreateClientHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateClientHandler) Handle(ctx context.Context, req *CreateClientRequest) (*CreateClientResponse, error) {
	if err := req.check("client.create.validation_failed"); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	client, err := h.repository.CreateClient(ctx, domain.Client{
		Name:        req.Name,
		LogoURL:     nullable.String(req.LogoURL),
		Website:     nullable.String(req.Website),
		Description: nullable.String(req.Description),
		IsActive:    isActive,
		SortOrder:   req.SortOrder.Value,
	})
	if err != nil {
		return nil, httperror.InternalServerError(
			"client.create.create_failed",
			"Failed to create client",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.ClientCreatedEvent, client)

	return &client, nil
}

package client

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"context"
	"errors"
)

type DeleteClientHandler struct {
	repository     Repository
	images         ImageRemover
	eventPublisher events.Publisher
}

func NewDeleteClientHandler(repository Repository, images ImageRemover, eventPublisher events.Publisher) *DeleteClientHandler {
	return &DeleteClientHandler{
		repository:     repository,
		images:         images,
		eventPublisher: eventPublisher,
	}
}

type DeleteClientRequest struct {
	ID int64 `params:"id"`
}

type DeleteClientResponse struct{}

func (h DeleteClientHandler) Handle(ctx context.Context, req *DeleteClientRequest) (*DeleteClientResponse, error) {
	client, err := h.repository.DeleteClient(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound("client.destroy.not_found", "Client not found", nil)
		}

		return nil, httperror.InternalServerError(
			"client.destroy.failed",
			"Failed to delete client",
			err.Error(),
		)
	}

	if client.LogoURL != nil {
		removeLogo(h.images, *client.LogoURL, client.ID)
	}

	events.Emit(ctx, h.eventPublisher, events.ClientDeletedEvent, events.DeletedPayload{ID: client.ID})

	return nil, nil
}

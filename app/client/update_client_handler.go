package client

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"blessindo/pkg/nullable"
	"context"
	"errors"

	"go.uber.org/zap"
)

type UpdateClientHandler struct {
	repository     Repository
	images         ImageRemover
	eventPublisher events.Publisher
}

type UpdateClientRequest struct {
	ID int64 `params:"id"`
	ClientFields
}

type UpdateClientResponse = domain.Client

func NewUpdateClientHandler(repository Repository, images ImageRemover, eventPublisher events.Publisher) *UpdateClientHandler {
	return &UpdateClientHandler{
		repository:     repository,
		images:         images,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateClientHandler) Handle(ctx context.Context, req *UpdateClientRequest) (*UpdateClientResponse, error) {
	if err := req.check("client.update.validation_failed"); err != nil {
		return nil, err
	}

	updated, previous, err := h.repository.UpdateClient(ctx, domain.ClientUpdate{
		ID:          req.ID,
		Name:        req.Name,
		LogoURL:     nullable.String(req.LogoURL),
		Website:     nullable.String(req.Website),
		Description: nullable.String(req.Description),
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder.Ptr(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound("client.update.not_found", "Client not found", nil)
		}

		return nil, httperror.InternalServerError(
			"client.update.update_failed",
			"Failed to update client",
			err.Error(),
		)
	}

	if previous.LogoURL != nil && !nullable.Equal(previous.LogoURL, updated.LogoURL) {
		removeLogo(h.images, *previous.LogoURL, updated.ID)
	}

	events.Emit(ctx, h.eventPublisher, events.ClientUpdatedEvent, updated)

	return &updated, nil
}

func removeLogo(images ImageRemover, url string, clientID int64) {
	deleted, err := images.DeleteByURL(url)
	if err != nil {
		zap.L().Error("Failed to delete client logo",
			zap.Int64("clientId", clientID),
			zap.String("logoUrl", url),
			zap.Error(err),
		)
		return
	}

	if deleted {
		zap.L().Info("Deleted client logo",
			zap.Int64("clientId", clientID),
			zap.String("logoUrl", url),
		)
	}
}

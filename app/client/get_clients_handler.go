package client

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
)

// GetClientsHandler lists clients ordered by sort_order, newest first within
// the same order. The public variant only returns active clients.
type GetClientsHandler struct {
	repository Repository
	activeOnly bool
}

func NewGetClientsHandler(repository Repository) *GetClientsHandler {
	return &GetClientsHandler{repository: repository}
}

func NewGetPublicClientsHandler(repository Repository) *GetClientsHandler {
	return &GetClientsHandler{repository: repository, activeOnly: true}
}

type GetClientsRequest struct{}

type GetClientsResponse = []domain.Client

func (h GetClientsHandler) Handle(ctx context.Context, _ *GetClientsRequest) (*GetClientsResponse, error) {
	clients, err := h.repository.GetClients(ctx, h.activeOnly)
	if err != nil {
		return nil, httperror.InternalServerError(
			"client.index.failed",
			"Failed to retrieve clients",
			err.Error(),
		)
	}

	return &clients, nil
}

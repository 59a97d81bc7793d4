package client

import (
	"blessindo/domain"
	"context"
)

type Repository interface {
	GetClients(ctx context.Context, activeOnly bool) ([]domain.Client, error)
	CreateClient(ctx context.Context, client domain.Client) (domain.Client, error)
	UpdateClient(ctx context.Context, update domain.ClientUpdate) (updated domain.Client, previous domain.Client, err error)
	DeleteClient(ctx context.Context, id int64) (domain.Client, error)
}

type ImageRemover interface {
	DeleteByURL(url string) (bool, error)
}

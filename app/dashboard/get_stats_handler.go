package dashboard

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
)

type Repository interface {
	GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type GetStatsHandler struct {
	repository Repository
}

func NewGetStatsHandler(repository Repository) *GetStatsHandler {
	return &GetStatsHandler{
		repository: repository,
	}
}

type GetStatsRequest struct{}

type GetStatsResponse = domain.DashboardStats

func (h GetStatsHandler) Handle(ctx context.Context, _ *GetStatsRequest) (*GetStatsResponse, error) {
	stats, err := h.repository.GetDashboardStats(ctx)
	if err != nil {
		return nil, httperror.InternalServerError(
			"dashboard.stats.failed",
			"Failed to retrieve dashboard stats",
			err.Error(),
		)
	}

	return &stats, nil
}

package dashboard

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	stats domain.DashboardStats
	err   error
}

func (r fakeRepository) GetDashboardStats(_ context.Context) (domain.DashboardStats, error) {
	return r.stats, r.err
}

func TestGetStats(t *testing.T) {
	repo := fakeRepository{stats: domain.DashboardStats{
		TotalCategories: 3,
		TotalProducts:   12,
		TotalOrders:     4,
		MonthlyRevenue:  decimal.RequireFromString("1500000.50"),
	}}

	res, err := NewGetStatsHandler(repo).Handle(context.Background(), &GetStatsRequest{})
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	require.JSONEq(t, `{"totalCategories":3,"totalProducts":12,"totalOrders":4,"monthlyRevenue":"1500000.5"}`, string(body))
}

func TestGetStatsFailure(t *testing.T) {
	_, err := NewGetStatsHandler(fakeRepository{err: errors.New("view missing")}).Handle(context.Background(), &GetStatsRequest{})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, "Failed to retrieve dashboard stats", httpErr.Message)
}

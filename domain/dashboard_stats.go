package domain

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalCategories int64           `db:"total_categories" json:"totalCategories"`
	TotalProducts   int64           `db:"total_products" json:"totalProducts"`
	TotalOrders     int64           `db:"monthly_orders" json:"totalOrders"`
	MonthlyRevenue  decimal.Decimal `db:"monthly_revenue" json:"monthlyRevenue"`
}

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"blessindo/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*PgRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPgRepositoryWithDB(sqlx.NewDb(db, "postgres")), mock
}

var productRowColumns = []string{
	"id", "name", "description", "price", "category_id", "image_url",
	"tokopedia_link", "shopee_link", "tiktok_link", "created_at",
}

func productRow(rows *sqlmock.Rows, id int64, imageURL any) *sqlmock.Rows {
	return rows.AddRow(id, "Kemeja", "Kemeja batik", "150000.00", int64(2), imageURL, nil, nil, nil, time.Now())
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories (name, description)")).
		WithArgs("Fashion", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "categories_name_key"})

	_, err := repo.CreateCategory(context.Background(), domain.Category{Name: "Fashion"})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestDeleteCategory(t *testing.T) {
	repo, mock := newMockRepository(t)
	query := regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")

	mock.ExpectExec(query).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.DeleteCategory(context.Background(), 5), domain.ErrNotFound)

	mock.ExpectExec(query).WithArgs(int64(6)).WillReturnError(&pq.Error{Code: foreignKeyViolation})
	require.ErrorIs(t, repo.DeleteCategory(context.Background(), 6), domain.ErrInUse)

	mock.ExpectExec(query).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteCategory(context.Background(), 7))
}

func TestGetProductsWithoutFilter(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(nil, 10, 20).
		WillReturnRows(productRow(sqlmock.NewRows(productRowColumns), 1, nil))

	products, err := repo.GetProducts(context.Background(), domain.ProductFilter{}, 10, 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.True(t, decimal.RequireFromString("150000").Equal(*products[0].Price))
	require.Nil(t, products[0].ImageURL)
}

func TestCountProductsByCategory(t *testing.T) {
	repo, mock := newMockRepository(t)
	categoryID := int64(2)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountProducts(context.Background(), domain.ProductFilter{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestUpdateProductReturnsPreviousRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(productRow(sqlmock.NewRows(productRowColumns), 1, "/uploads/old.png"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET")).
		WillReturnRows(productRow(sqlmock.NewRows(productRowColumns), 1, "/uploads/new.png"))
	mock.ExpectCommit()

	newURL := "/uploads/new.png"
	updated, previous, err := repo.UpdateProduct(context.Background(), domain.Product{
		ID: 1, Name: "Kemeja", Description: "Kemeja batik", CategoryID: 2, ImageURL: &newURL,
	})
	require.NoError(t, err)
	require.Equal(t, "/uploads/old.png", *previous.ImageURL)
	require.Equal(t, "/uploads/new.png", *updated.ImageURL)
}

func TestUpdateProductMissingRowRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(productRowColumns))
	mock.ExpectRollback()

	_, _, err := repo.UpdateProduct(context.Background(), domain.Product{ID: 9, Name: "x", Description: "y", CategoryID: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProductUnknownCategory(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(productRow(sqlmock.NewRows(productRowColumns), 1, nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET")).
		WillReturnError(&pq.Error{Code: foreignKeyViolation, Constraint: "products_category_id_fkey"})
	mock.ExpectRollback()

	_, _, err := repo.UpdateProduct(context.Background(), domain.Product{ID: 1, Name: "x", Description: "y", CategoryID: 99})
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestDeleteMissingClient(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM clients WHERE id = $1 RETURNING")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.DeleteClient(context.Background(), 4)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSettingsMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE admin_settings SET")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	phone := "021-555"
	_, err := repo.UpdateSettings(context.Background(), domain.SettingsUpdate{Phone: &phone})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardStatsWithoutRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM dashboard_stats")).
		WillReturnRows(sqlmock.NewRows([]string{"total_categories", "total_products", "monthly_orders", "monthly_revenue"}))

	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.TotalProducts)
	require.True(t, stats.MonthlyRevenue.IsZero())
}

func TestDashboardStats(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM dashboard_stats")).
		WillReturnRows(sqlmock.NewRows([]string{"total_categories", "total_products", "monthly_orders", "monthly_revenue"}).
			AddRow(int64(3), int64(12), int64(4), "2500000.00"))

	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalCategories)
	require.Equal(t, int64(4), stats.TotalOrders)
	require.True(t, decimal.RequireFromString("2500000").Equal(stats.MonthlyRevenue))
}

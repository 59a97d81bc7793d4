package postgres

import (
	"context"

	"blessindo/domain"

	"github.com/jmoiron/sqlx"
)

const productColumns = `id, name, description, price, category_id, image_url,
	tokopedia_link, shopee_link, tiktok_link, created_at`

// Both list queries share this predicate so the count matches the page.
const productFilter = `($1::bigint IS NULL OR category_id = $1)`

func (r *PgRepository) GetProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	query := `SELECT ` + productColumns + ` FROM products
		WHERE ` + productFilter + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &products, query, filter.CategoryID, limit, offset); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *PgRepository) CountProducts(ctx context.Context, filter domain.ProductFilter) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products WHERE ` + productFilter

	if err := r.db.GetContext(ctx, &count, query, filter.CategoryID); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *PgRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	return p, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product
	query := `
		INSERT INTO products (
			name, description, price, category_id, image_url,
			tokopedia_link, shopee_link, tiktok_link
		) VALUES (
			:name, :description, :price, :category_id, :image_url,
			:tokopedia_link, :shopee_link, :tiktok_link
		) RETURNING ` + productColumns

	err := namedGet(ctx, r.db, &p, query, product)
	return p, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, domain.Product, error) {
	var updated, previous domain.Product

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		lock := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
		if err := tx.GetContext(ctx, &previous, lock, product.ID); err != nil {
			return translate(err, domain.ErrInvalidReference)
		}

		query := `
			UPDATE products SET
				name = :name,
				description = :description,
				price = :price,
				category_id = :category_id,
				image_url = :image_url,
				tokopedia_link = :tokopedia_link,
				shopee_link = :shopee_link,
				tiktok_link = :tiktok_link
			WHERE id = :id
			RETURNING ` + productColumns

		return translate(namedGet(ctx, tx, &updated, query, product), domain.ErrInvalidReference)
	})

	return updated, previous, err
}

func (r *PgRepository) DeleteProduct(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns

	err := r.db.GetContext(ctx, &p, query, id)
	return p, translate(err, domain.ErrInUse)
}

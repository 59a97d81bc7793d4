package postgres

import (
	"context"
	"fmt"

	"blessindo/domain"
)

const categoryColumns = `id, name, description, created_at`

func (r *PgRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, id DESC`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *PgRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	var c domain.Category
	query := `
		INSERT INTO categories (name, description)
		VALUES (:name, :description)
		RETURNING ` + categoryColumns

	err := namedGet(ctx, r.db, &c, query, category)
	return c, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	var c domain.Category
	query := `
		UPDATE categories SET
			name = :name,
			description = :description
		WHERE id = :id
		RETURNING ` + categoryColumns

	err := namedGet(ctx, r.db, &c, query, category)
	return c, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) CountCategoryProducts(ctx context.Context, id int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`

	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *PgRepository) DeleteCategory(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translate(err, domain.ErrInUse)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

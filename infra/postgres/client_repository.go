package postgres

import (
	"context"

	"blessindo/domain"

	"github.com/jmoiron/sqlx"
)

const clientColumns = `id, name, logo_url, website, description, is_active, sort_order, created_at`

func (r *PgRepository) GetClients(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE (NOT $1::boolean OR is_active)
		ORDER BY sort_order ASC, created_at DESC`

	if err := r.db.SelectContext(ctx, &clients, query, activeOnly); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *PgRepository) CreateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	var c domain.Client
	query := `
		INSERT INTO clients (name, logo_url, website, description, is_active, sort_order)
		VALUES (:name, :logo_url, :website, :description, :is_active, :sort_order)
		RETURNING ` + clientColumns

	err := namedGet(ctx, r.db, &c, query, client)
	return c, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) UpdateClient(ctx context.Context, update domain.ClientUpdate) (domain.Client, domain.Client, error) {
	var updated, previous domain.Client

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		lock := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 FOR UPDATE`
		if err := tx.GetContext(ctx, &previous, lock, update.ID); err != nil {
			return translate(err, domain.ErrInvalidReference)
		}

		query := `
			UPDATE clients SET
				name = :name,
				logo_url = :logo_url,
				website = :website,
				description = :description,
				is_active = COALESCE(:is_active, is_active),
				sort_order = COALESCE(:sort_order, sort_order)
			WHERE id = :id
			RETURNING ` + clientColumns

		return translate(namedGet(ctx, tx, &updated, query, update), domain.ErrInvalidReference)
	})

	return updated, previous, err
}

func (r *PgRepository) DeleteClient(ctx context.Context, id int64) (domain.Client, error) {
	var c domain.Client
	query := `DELETE FROM clients WHERE id = $1 RETURNING ` + clientColumns

	err := r.db.GetContext(ctx, &c, query, id)
	return c, translate(err, domain.ErrInUse)
}

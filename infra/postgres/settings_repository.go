package postgres

import (
	"context"
	"database/sql"
	"errors"

	"blessindo/domain"
)

const settingsColumns = `id, company_name, address, phone, whatsapp, email, website,
	vision_id, vision_en, mission_id, mission_en`

func (r *PgRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings
	query := `SELECT ` + settingsColumns + ` FROM admin_settings WHERE id = $1`

	err := r.db.GetContext(ctx, &s, query, domain.SettingsID)
	return s, translate(err, domain.ErrInvalidReference)
}

// UpdateSettings overwrites the non-nil fields of the singleton row.
func (r *PgRepository) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	var s domain.Settings
	query := `
		UPDATE admin_settings SET
			company_name = COALESCE(:company_name, company_name),
			address = COALESCE(:address, address),
			phone = COALESCE(:phone, phone),
			whatsapp = COALESCE(:whatsapp, whatsapp),
			email = COALESCE(:email, email),
			website = COALESCE(:website, website),
			vision_id = COALESCE(:vision_id, vision_id),
			vision_en = COALESCE(:vision_en, vision_en),
			mission_id = COALESCE(:mission_id, mission_id),
			mission_en = COALESCE(:mission_en, mission_en)
		WHERE id = 1
		RETURNING ` + settingsColumns

	err := namedGet(ctx, r.db, &s, query, update)
	return s, translate(err, domain.ErrInvalidReference)
}

func (r *PgRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	query := `
		SELECT
			COALESCE(total_categories, 0) AS total_categories,
			COALESCE(total_products, 0) AS total_products,
			COALESCE(monthly_orders, 0) AS monthly_orders,
			COALESCE(monthly_revenue, 0) AS monthly_revenue
		FROM dashboard_stats
		LIMIT 1`

	err := r.db.GetContext(ctx, &stats, query)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DashboardStats{}, nil
	}

	return stats, err
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64            `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	Description   string           `db:"description" json:"description"`
	Price         *decimal.Decimal `db:"price" json:"price"`
	CategoryID    int64            `db:"category_id" json:"category_id"`
	ImageURL      *string          `db:"image_url" json:"image_url"`
	TokopediaLink *string          `db:"tokopedia_link" json:"tokopedia_link"`
	ShopeeLink    *string          `db:"shopee_link" json:"shopee_link"`
	TiktokLink    *string          `db:"tiktok_link" json:"tiktok_link"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

package domain

import "time"

type Client struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	LogoURL     *string   `db:"logo_url" json:"logo_url"`
	Website     *string   `db:"website" json:"website"`
	Description *string   `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	SortOrder   int64     `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ClientUpdate replaces the descriptive fields of a client. A nil IsActive or
// SortOrder keeps the stored value.
type ClientUpdate struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	LogoURL     *string `db:"logo_url"`
	Website     *string `db:"website"`
	Description *string `db:"description"`
	IsActive    *bool   `db:"is_active"`
	SortOrder   *int64  `db:"sort_order"`
}

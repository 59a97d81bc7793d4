package setting

import (
	"blessindo/domain"
	"context"
)

type Repository interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)
}

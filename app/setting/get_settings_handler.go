package setting

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"context"
	"errors"
)

type GetSettingsHandler struct {
	repository Repository
}

func NewGetSettingsHandler(repository Repository) *GetSettingsHandler {
	return &GetSettingsHandler{
		repository: repository,
	}
}

type GetSettingsRequest struct{}

type GetSettingsResponse = domain.Settings

func (h GetSettingsHandler) Handle(ctx context.Context, _ *GetSettingsRequest) (*GetSettingsResponse, error) {
	settings, err := h.repository.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound("setting.show.not_found", "Settings not found", nil)
		}

		return nil, httperror.InternalServerError(
			"setting.show.failed",
			"Failed to retrieve settings",
			err.Error(),
		)
	}

	return &settings, nil
}

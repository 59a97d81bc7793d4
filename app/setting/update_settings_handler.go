package setting

import (
	"blessindo/domain"
	"blessindo/pkg/events"
	"blessindo/pkg/httperror"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type UpdateSettingsHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewUpdateSettingsHandler(repository Repository, eventPublisher events.Publisher) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

// UpdateSettingsRequest leaves a field untouched when it is absent from the
// body. An explicit empty string is stored as given.
type UpdateSettingsRequest struct {
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Whatsapp    *string `json:"whatsapp" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,max=255"`
	Website     *string `json:"website" validate:"omitempty,max=255"`
	VisionID    *string `json:"vision_id"`
	VisionEN    *string `json:"vision_en"`
	MissionID   *string `json:"mission_id"`
	MissionEN   *string `json:"mission_en"`
}

type UpdateSettingsResponse = domain.Settings

func (h UpdateSettingsHandler) Handle(ctx context.Context, req *UpdateSettingsRequest) (*UpdateSettingsResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, httperror.FromValidation(err, "setting.update.validation_failed", "Invalid settings")
	}

	settings, err := h.repository.UpdateSettings(ctx, domain.SettingsUpdate{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		Email:       req.Email,
		Website:     req.Website,
		VisionID:    req.VisionID,
		VisionEN:    req.VisionEN,
		MissionID:   req.MissionID,
		MissionEN:   req.MissionEN,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound("setting.update.not_found", "Settings not found", nil)
		}

		return nil, httperror.InternalServerError(
			"setting.update.update_failed",
			"Failed to update settings",
			err.Error(),
		)
	}

	events.Emit(ctx, h.eventPublisher, events.SettingsUpdatedEvent, settings)

	return &settings, nil
}

package dto

import "time"

type UpdateSettingsRequest struct {
	PublicAlertsEnabled *bool `json:"public_alerts_enabled" validate:"required"`
}

type SettingsResponse struct {
	PublicAlertsEnabled bool      `json:"public_alerts_enabled"`
	UpdatedAt           time.Time `json:"updated_at"`
}

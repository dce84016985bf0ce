package services

import (
	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

// SettingsService управляет единственной строкой системных настроек.
// Строка создается лениво при первом чтении, по умолчанию публичные
// оповещения выключены.
type SettingsService interface {
	Get() (*dto.SettingsResponse, error)
	SetPublicAlertsEnabled(enabled bool) (*dto.SettingsResponse, error)
	IsPublicAlertsEnabled() (bool, error)
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) Get() (*dto.SettingsResponse, error) {
	setting, err := s.settingsRepo.Get()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SettingsResponse{
		PublicAlertsEnabled: setting.PublicAlertsEnabled,
		UpdatedAt:           setting.UpdatedAt,
	}, nil
}

func (s *SettingsServiceImpl) SetPublicAlertsEnabled(enabled bool) (*dto.SettingsResponse, error) {
	setting, err := s.settingsRepo.SetPublicAlertsEnabled(enabled)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("public alerts setting updated", "enabled", setting.PublicAlertsEnabled)

	return &dto.SettingsResponse{
		PublicAlertsEnabled: setting.PublicAlertsEnabled,
		UpdatedAt:           setting.UpdatedAt,
	}, nil
}

func (s *SettingsServiceImpl) IsPublicAlertsEnabled() (bool, error) {
	setting, err := s.settingsRepo.Get()
	if err != nil {
		return false, err
	}
	return setting.PublicAlertsEnabled, nil
}

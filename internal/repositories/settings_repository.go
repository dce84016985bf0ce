package repositories

import (
	"civicfix_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get() (*models.SystemSetting, error)
	SetPublicAlertsEnabled(enabled bool) (*models.SystemSetting, error)
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

// Get возвращает единственную строку настроек, лениво создавая её
// с выключенными оповещениями. ON CONFLICT DO NOTHING делает
// инициализацию идемпотентной при гонке двух первых читателей.
func (r *SettingsRepositoryImpl) Get() (*models.SystemSetting, error) {
	defaults := models.SystemSetting{
		ID:                  models.SystemSettingID,
		PublicAlertsEnabled: false,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
	if err != nil {
		return nil, err
	}

	var setting models.SystemSetting
	if err := r.db.First(&setting, "id = ?", models.SystemSettingID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingsRepositoryImpl) SetPublicAlertsEnabled(enabled bool) (*models.SystemSetting, error) {
	// Строка может еще не существовать - Get создаст её
	if _, err := r.Get(); err != nil {
		return nil, err
	}

	err := r.db.Model(&models.SystemSetting{}).
		Where("id = ?", models.SystemSettingID).
		Update("public_alerts_enabled", enabled).Error
	if err != nil {
		return nil, err
	}

	var setting models.SystemSetting
	if err := r.db.First(&setting, "id = ?", models.SystemSettingID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
